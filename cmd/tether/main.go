package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/config/store"
	"github.com/tether-ai/tether/internal/grpcclient"
	tetherversion "github.com/tether-ai/tether/internal/version"
)

var rootCmd *cobra.Command

// OutputFormatter handles output formatting for both JSON and human-readable modes
type OutputFormatter struct {
	jsonMode bool
}

// newOutputFormatter creates a new formatter based on the command's --json flag
func newOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &OutputFormatter{jsonMode: jsonMode}
}

// CommandResult pairs the JSON payload of a command with its human rendering.
type CommandResult struct {
	Data          map[string]interface{}
	HumanReadable func() error
}

// Render prints the JSON payload in JSON mode, otherwise runs the
// human-readable renderer.
func (f *OutputFormatter) Render(result CommandResult) error {
	if f.jsonMode {
		return f.Print(result.Data)
	}
	if result.HumanReadable != nil {
		return result.HumanReadable()
	}
	return nil
}

// PrintText runs fn in human-readable mode only.
func (f *OutputFormatter) PrintText(fn func()) {
	if !f.jsonMode {
		fn()
	}
}

// Print outputs data in the appropriate format
func (f *OutputFormatter) Print(data interface{}) error {
	if f.jsonMode {
		jsonBytes, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		switch v := data.(type) {
		case string:
			fmt.Println(v)
		default:
			// Fallback to JSON for unknown types
			jsonBytes, _ := json.MarshalIndent(data, "", "  ")
			fmt.Println(string(jsonBytes))
		}
	}
	return nil
}

// Success outputs a success message
func (f *OutputFormatter) Success(message string, data map[string]interface{}) error {
	if f.jsonMode {
		output := map[string]interface{}{
			"success": true,
			"message": message,
		}
		for k, v := range data {
			output[k] = v
		}
		return f.Print(output)
	}
	fmt.Println(message)
	return nil
}

// Error outputs an error message
func (f *OutputFormatter) Error(message string, err error) error {
	if f.jsonMode {
		output := map[string]interface{}{
			"success": false,
			"error":   message,
		}
		if err != nil {
			output["details"] = err.Error()
		}
		jsonBytes, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(os.Stderr, string(jsonBytes))
	} else {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintln(os.Stderr, message)
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "tether",
		Short: "Tether - client for remote execution agents",
		Long: `Tether attaches to a running execution agent, streams terminal sessions
in both directions, and drives agent runs from the command line.

It reaches a local agent through its discovery descriptor, or a remote
agent by explicit address.`,
	}
	rootCmd.Version = tetherversion.String()
	rootCmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	flags := rootCmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.String("address", "", "Agent address (socket path, host:port, or URL; overrides discovery)")
	flags.String("token", "", "Bearer token for authenticated access")
	flags.String("agent-id", "", "Agent to route calls to when connected through a relay")
	flags.Bool("insecure", false, "Disable TLS verification (dangerous; testing only)")
	flags.String("ca-cert", "", "Path to custom CA certificate for TLS verification")
	flags.String("server-name", "", "Override TLS server name (advanced)")
	flags.String("descriptor", "", "Agent descriptor path (overrides the search order)")
}

func main() {
	rootCmd.AddCommand(
		newSessionsCommand(),
		newOutputCommand(),
		newAgentCommand(),
		newStatusCommand(),
		newConfigCommand(),
		newVersionCommand(),
		newStubAgentCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Error is already printed by command handlers
		os.Exit(1)
	}
}

// cliSettingKeys are the stored configuration keys the CLI reads as flag
// defaults.
var cliSettingKeys = []string{"address", "token", "agent-id", "descriptor"}

// storedSettings reads CLI defaults from the settings store. Any failure
// means no defaults; flags and discovery still work.
func storedSettings() map[string]string {
	st, err := store.Open(store.Options{})
	if err != nil {
		log.Printf("[cli] open settings store: %v", err)
		return nil
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	values, err := st.LoadSettings(ctx, cliSettingKeys...)
	if err != nil {
		log.Printf("[cli] load settings: %v", err)
		return nil
	}
	return values
}

// settingsFromCommand merges stored configuration and command-line flags
// into client settings. Flags win over stored values.
func settingsFromCommand(cmd *cobra.Command, stored map[string]string) (*config.Settings, error) {
	settings := config.Default()
	settings.Address = stored["address"]
	settings.Token = stored["token"]
	settings.AgentID = stored["agent-id"]
	settings.DescriptorPath = stored["descriptor"]

	flags := cmd.Flags()
	if v, _ := flags.GetString("address"); v != "" {
		settings.Address = v
	}
	if v, _ := flags.GetString("token"); v != "" {
		settings.Token = v
	}
	if v, _ := flags.GetString("agent-id"); v != "" {
		settings.AgentID = v
	}
	if v, _ := flags.GetString("descriptor"); v != "" {
		settings.DescriptorPath = v
	}

	insecureTLS, _ := flags.GetBool("insecure")
	caCert, _ := flags.GetString("ca-cert")
	serverName, _ := flags.GetString("server-name")
	if insecureTLS || caCert != "" || serverName != "" {
		tlsConfig, err := grpcclient.BuildTLSConfig(grpcclient.TLSOptions{
			Insecure:   insecureTLS,
			CACertPath: caCert,
			ServerName: serverName,
		})
		if err != nil {
			return nil, err
		}
		settings.TLS = tlsConfig
	}

	return settings, nil
}

// connectTransport builds the transport from flags and dials the agent.
func connectTransport(cmd *cobra.Command) (*grpcclient.Transport, *config.Settings, error) {
	settings, err := settingsFromCommand(cmd, storedSettings())
	if err != nil {
		return nil, nil, err
	}
	t := grpcclient.New(settings)

	ctx, cancel := context.WithTimeout(context.Background(), settings.DialTimeout)
	defer cancel()
	if err := t.Connect(ctx); err != nil {
		return nil, nil, err
	}
	return t, settings, nil
}

// withClient runs fn against a connected client under a deadline, closing
// the transport when done.
func withClient(cmd *cobra.Command, timeout time.Duration, fn func(ctx context.Context, c *grpcclient.Client, out *OutputFormatter) error) error {
	out := newOutputFormatter(cmd)

	t, _, err := connectTransport(cmd)
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}
	defer t.Close()

	client, err := t.Client()
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return fn(ctx, client, out)
}
