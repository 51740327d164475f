package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/grpcclient"
	"github.com/tether-ai/tether/internal/stream"
)

// newOutputCommand creates the output command for following a session
// without taking over the local terminal.
func newOutputCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "output [session-id]",
		Short:         "Follow session output (read-only)",
		Long:          "Follow a session's output stream without attaching a terminal.\nOutput goes to stdout, so it can be piped or redirected.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          followOutput,
	}
	cmd.Flags().Bool("history", false, "Print the retained output once and exit")
	cmd.Flags().Uint32("max-bytes", 0, "Byte cap for --history (0 uses the agent default)")
	return cmd
}

func followOutput(cmd *cobra.Command, args []string) error {
	sessionID := args[0]
	out := newOutputFormatter(cmd)

	if history, _ := cmd.Flags().GetBool("history"); history {
		maxBytes, _ := cmd.Flags().GetUint32("max-bytes")
		return withClient(cmd, 10*time.Second, func(ctx context.Context, c *grpcclient.Client, out *OutputFormatter) error {
			data, err := c.GetHistory(ctx, sessionID, maxBytes)
			if err != nil {
				return out.Error("Failed to fetch session history", err)
			}
			os.Stdout.Write(data)
			return nil
		})
	}

	t, settings, err := connectTransport(cmd)
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}
	defer t.Close()

	client, err := t.Client()
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}

	poller := stream.NewPollingStream(client.Sessions(), settings, sessionID)
	poller.OnOutput(func(data []byte) { os.Stdout.Write(data) })
	poller.OnError(func(err error) { fmt.Fprintf(os.Stderr, "tether: poll: %v\n", err) })

	// The poll loop lives as long as this context; Ctrl+C ends it.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := poller.Connect(ctx); err != nil {
		return out.Error("Failed to follow session output", err)
	}
	defer poller.Close()

	// Status lines go to stderr so stdout stays a clean byte stream.
	out.PrintText(func() {
		fmt.Fprintf(os.Stderr, "Following output of session %s (Ctrl+C to stop)\n", sessionID)
	})

	if err := poller.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return out.Error("Output stream failed", err)
	}
	return poller.Close()
}
