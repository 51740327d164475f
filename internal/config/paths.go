package config

import (
	"os"
	"path/filepath"
)

// DescriptorName is the file name of the agent discovery descriptor.
const DescriptorName = "agent.json"

// systemDescriptor is the system-wide descriptor written by agents that run
// as a service rather than per-user.
const systemDescriptor = "/run/tether/agent.json"

// Paths contains the on-disk layout shared by the SDK and the stub agent.
type Paths struct {
	Home       string // Tether home directory
	ConfigDB   string // SQLite settings store path
	Descriptor string // User-scoped agent descriptor path
	Socket     string // Default stub agent socket path
	TokenFile  string // Default bearer token file path
	Logs       string // Logs directory
	TempDir    string // Temporary files directory
}

// GetPaths returns the user-scoped path layout.
func GetPaths() Paths {
	home := GetTetherHome()

	return Paths{
		Home:       home,
		ConfigDB:   filepath.Join(home, "config.db"),
		Descriptor: filepath.Join(home, DescriptorName),
		Socket:     filepath.Join(home, "agent.sock"),
		TokenFile:  filepath.Join(home, "token"),
		Logs:       filepath.Join(home, "logs"),
		TempDir:    filepath.Join(home, "tmp"),
	}
}

// GetTetherHome returns the tether home directory (~/.tether).
func GetTetherHome() string {
	userHome, _ := os.UserHomeDir()
	return filepath.Join(userHome, ".tether")
}

// SystemDescriptorPath returns the system-wide agent descriptor path.
func SystemDescriptorPath() string {
	return systemDescriptor
}

// DescriptorCandidates returns descriptor paths in search order: the explicit
// override (when non-empty), then the user-scoped path, then the system path.
func DescriptorCandidates(override string) []string {
	paths := GetPaths()
	if override != "" {
		return []string{ExpandPath(override), paths.Descriptor, systemDescriptor}
	}
	return []string{paths.Descriptor, systemDescriptor}
}

// ExpandPath expands ~ to the user home directory.
func ExpandPath(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) == 1 {
			return home
		}
		if path[1] == '/' || path[1] == os.PathSeparator {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// EnsureDirs creates the directory structure if it does not exist.
func EnsureDirs() (Paths, error) {
	paths := GetPaths()

	dirs := []string{
		paths.Home,
		paths.Logs,
		paths.TempDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return paths, err
		}
	}

	return paths, nil
}
