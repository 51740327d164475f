package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/grpcclient"
	"github.com/tether-ai/tether/internal/rpcerrors"
	"github.com/tether-ai/tether/internal/script"
	"github.com/tether-ai/tether/internal/stream"
)

func newSessionsCommand() *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:           "sessions",
		Short:         "Session management commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	listCmd := &cobra.Command{
		Use:           "list",
		Short:         "List sessions on the agent",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          listSessions,
	}
	listCmd.Flags().String("hostname", "", "Only list sessions created from this hostname")

	createCmd := &cobra.Command{
		Use:           "create",
		Short:         "Create a new session on the agent",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          createSession,
	}
	createCmd.Flags().String("shell", "", "Shell to run (defaults to the agent's choice)")
	createCmd.Flags().StringP("workdir", "w", "", "Working directory for the session")
	createCmd.Flags().Bool("attach", false, "Attach to the session once created")
	createCmd.Flags().String("transform", "", "JS transform script applied to output when attaching")

	closeCmd := &cobra.Command{
		Use:           "close [session-id]",
		Short:         "Close a session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          closeSession,
	}

	attachCmd := &cobra.Command{
		Use:           "attach [session-id]",
		Short:         "Attach to a running session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          attachSession,
	}
	attachCmd.Flags().String("transform", "", "JS transform script applied to session output")

	sessionsCmd.AddCommand(listCmd, createCmd, closeCmd, attachCmd)
	return sessionsCmd
}

// listSessions lists sessions known to the agent
func listSessions(cmd *cobra.Command, args []string) error {
	hostname, _ := cmd.Flags().GetString("hostname")
	return withClient(cmd, 5*time.Second, func(ctx context.Context, c *grpcclient.Client, out *OutputFormatter) error {
		sessions, err := c.ListSessions(ctx, hostname)
		if err != nil {
			return out.Error("Failed to list sessions", err)
		}

		list := make([]map[string]interface{}, 0, len(sessions))
		for _, sess := range sessions {
			list = append(list, map[string]interface{}{
				"id":         sess.GetId(),
				"status":     sess.GetStatus(),
				"hostname":   sess.GetHostname(),
				"shell":      sess.GetShell(),
				"created_at": sess.GetCreatedAt(),
			})
		}

		return out.Render(CommandResult{
			Data: map[string]interface{}{"sessions": list},
			HumanReadable: func() error {
				if len(sessions) == 0 {
					fmt.Println("No active sessions")
					return nil
				}

				fmt.Println("Active sessions:")
				fmt.Println("ID\t\tStatus\t\tHost\t\tShell")
				fmt.Println("---\t\t---\t\t---\t\t---")
				for _, sess := range sessions {
					fmt.Printf("%s\t%s\t%s\t%s\n",
						sess.GetId(),
						sess.GetStatus(),
						sess.GetHostname(),
						sess.GetShell())
				}
				return nil
			},
		})
	})
}

// createSession creates a session on the agent, optionally attaching to it
func createSession(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	shell, _ := cmd.Flags().GetString("shell")
	workdir, _ := cmd.Flags().GetString("workdir")
	attachAfter, _ := cmd.Flags().GetBool("attach")

	// If no workdir specified, use current directory
	if workdir == "" {
		if cwd, err := os.Getwd(); err == nil {
			workdir = cwd
		}
	}
	cols, rows := terminalSize()
	hostname, _ := os.Hostname()

	t, settings, err := connectTransport(cmd)
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}
	defer t.Close()

	client, err := t.Client()
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	sess, err := client.CreateSession(ctx, &apiv1.CreateSessionRequest{
		Hostname:   hostname,
		Shell:      shell,
		WorkingDir: workdir,
		Cols:       uint32(cols),
		Rows:       uint32(rows),
		Env:        os.Environ(),
	})
	cancel()
	if err != nil {
		return out.Error("Failed to create session", err)
	}

	if !attachAfter {
		return out.Success(fmt.Sprintf("Session %s created", sess.GetId()), map[string]interface{}{
			"session_id": sess.GetId(),
			"hostname":   sess.GetHostname(),
		})
	}
	return runAttach(cmd, client, settings, sess.GetId())
}

// closeSession closes a running session
func closeSession(cmd *cobra.Command, args []string) error {
	sessionID := args[0]
	return withClient(cmd, 5*time.Second, func(ctx context.Context, c *grpcclient.Client, out *OutputFormatter) error {
		if err := c.CloseSession(ctx, sessionID); err != nil {
			errMsg := "Failed to close session"
			if rpcerrors.IsCode(err, rpcerrors.CodeNotFound) {
				errMsg = fmt.Sprintf("Session %s not found", sessionID)
			}
			return out.Error(errMsg, err)
		}

		return out.Success(fmt.Sprintf("Session %s closed", sessionID), map[string]interface{}{
			"session_id": sessionID,
		})
	})
}

// attachSession attaches the local terminal to an existing session
func attachSession(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)

	t, settings, err := connectTransport(cmd)
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}
	defer t.Close()

	client, err := t.Client()
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}

	return runAttach(cmd, client, settings, args[0])
}

// terminalSize returns the local terminal geometry, defaulting to 80x24
// when stdin is not a terminal.
func terminalSize() (cols, rows uint16) {
	cols, rows = 80, 24
	if term.IsTerminal(0) {
		if w, h, err := term.GetSize(0); err == nil && w > 0 && h > 0 {
			cols, rows = uint16(w), uint16(h)
		}
	}
	return cols, rows
}

// runAttach drives a duplex attach stream against the local terminal until
// the session ends, the stream fails, or the user detaches.
func runAttach(cmd *cobra.Command, client *grpcclient.Client, settings *config.Settings, sessionID string) error {
	transformPath, _ := cmd.Flags().GetString("transform")
	var transform *script.Script
	if transformPath != "" {
		var err error
		transform, err = script.Load(config.ExpandPath(transformPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
	}

	attach := stream.NewAttachStream(client.Sessions(), settings, sessionID)

	type attachEnd struct {
		reason string
		err    error
	}
	done := make(chan attachEnd, 2)

	attach.OnOutput(func(data []byte) {
		if transform != nil {
			replaced, keep, err := transform.Transform(data)
			switch {
			case err != nil:
				// Emit the raw chunk; hiding session output over a
				// script bug would be worse than the noise.
				fmt.Fprintf(os.Stderr, "\r\ntransform error: %v\r\n", err)
			case !keep:
				return
			default:
				data = replaced
			}
		}
		os.Stdout.Write(data)
	})
	attach.OnClosed(func(reason string) { done <- attachEnd{reason: reason} })
	attach.OnError(func(err error) { done <- attachEnd{err: err} })

	sendResize := func() {
		if !term.IsTerminal(0) {
			return
		}
		cols, rows, err := term.GetSize(0)
		if err != nil {
			return
		}
		_ = attach.SendResize(uint16(cols), uint16(rows))
	}
	// Send the local geometry as soon as the session handoff completes so
	// the remote PTY matches this terminal.
	attach.OnReady(func(string) { sendResize() })

	connectCtx, cancel := context.WithTimeout(context.Background(), settings.DialTimeout)
	err := attach.Connect(connectCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to attach to session %s: %v\n", sessionID, err)
		return err
	}
	defer attach.Close()

	fmt.Printf("Attaching to session %s...\n", sessionID)
	fmt.Println("Press Ctrl+C to detach")

	// Set terminal to raw mode if available.
	if term.IsTerminal(0) {
		oldState, err := term.MakeRaw(0)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(0, oldState)
	}

	// Input goroutine: read from stdin and queue for the stream.
	// Note: os.Stdin.Read is a blocking syscall not interruptible by context
	// cancellation. This goroutine may outlive runAttach until the next
	// keystroke or process exit. Acceptable for CLI usage.
	go func() {
		buffer := make([]byte, 1024)
		for {
			n, err := os.Stdin.Read(buffer)
			if n > 0 {
				// The queue holds the slice until the send loop drains
				// it, so each chunk needs its own backing array.
				data := append([]byte(nil), buffer[:n]...)
				if sendErr := attach.SendInput(data); sendErr != nil {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	// Handle signals.
	sigChan := make(chan os.Signal, 2)
	notifyAttachSignals(sigChan)
	defer signal.Stop(sigChan)

	for {
		select {
		case sig := <-sigChan:
			if isResizeSignal(sig) {
				sendResize()
				continue
			}
			// Non-resize signal (SIGINT or SIGTERM) detaches; the
			// session keeps running on the agent.
			fmt.Print("\r\nDetaching from session...\r\n")
			return attach.Close()
		case end := <-done:
			if end.err != nil {
				fmt.Fprintf(os.Stderr, "\r\nStream error: %v\r\n", end.err)
				return end.err
			}
			if end.reason != "" {
				fmt.Printf("\r\nSession closed: %s\r\n", end.reason)
			} else {
				fmt.Print("\r\nSession closed\r\n")
			}
			return nil
		}
	}
}
