package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/agentstub"
	"github.com/tether-ai/tether/internal/config"
)

// newStubAgentCommand creates the hidden stub-agent command. The stub is a
// development stand-in for a real execution agent: it serves the session
// and agent API on a local socket and writes a discovery descriptor so the
// other commands find it without flags.
func newStubAgentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stub-agent",
		Short:         "Run a local stub agent (development)",
		Hidden:        true,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStubAgent,
	}
	cmd.Flags().String("listen", "", "Listen address (unix socket path or host:port; default is the user socket)")
	cmd.Flags().Bool("no-descriptor", false, "Do not write a discovery descriptor")
	cmd.Flags().String("token-file", "", "Token file path advertised in the descriptor")
	cmd.Flags().String("engine", agentstub.EnginePTY, "Session engine (echo|pty)")
	cmd.Flags().String("hostname", "", "Hostname reported for sessions (default is the OS hostname)")
	return cmd
}

func runStubAgent(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)

	paths, err := config.EnsureDirs()
	if err != nil {
		return out.Error("Failed to prepare tether home", err)
	}

	flags := cmd.Flags()
	listen, _ := flags.GetString("listen")
	if listen == "" {
		listen = paths.Socket
	}

	// The persistent --descriptor flag doubles as the write location, so a
	// stub started with it is found by clients using the same flag.
	descriptorPath := paths.Descriptor
	if v, _ := flags.GetString("descriptor"); v != "" {
		descriptorPath = config.ExpandPath(v)
	}
	if noDescriptor, _ := flags.GetBool("no-descriptor"); noDescriptor {
		descriptorPath = ""
	}

	tokenPath, _ := flags.GetString("token-file")
	engine, _ := flags.GetString("engine")
	hostname, _ := flags.GetString("hostname")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = agentstub.ListenAndServe(ctx, agentstub.ServeOptions{
		Address:        listen,
		DescriptorPath: descriptorPath,
		TokenPath:      config.ExpandPath(tokenPath),
		Engine:         engine,
		Hostname:       hostname,
	})
	if err != nil {
		return out.Error("Stub agent failed", err)
	}
	return nil
}
