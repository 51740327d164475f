package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/grpcclient"
	tetherversion "github.com/tether-ai/tether/internal/version"
)

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show client version and agent reachability",
		RunE:  runVersion,
	}
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := newOutputFormatter(cmd)
	clientVersion := tetherversion.String()

	// Best effort: the agent's descriptor only admits protocol-compatible
	// peers, so reachable implies compatible.
	var agentErr error
	settings, err := settingsFromCommand(cmd, storedSettings())
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		t := grpcclient.New(settings)
		if agentErr = t.Connect(ctx); agentErr == nil {
			t.Close()
		}
		cancel()
	} else {
		agentErr = err
	}

	if out.jsonMode {
		data := map[string]any{
			"client":   clientVersion,
			"protocol": tetherversion.Protocol,
		}
		if agentErr == nil {
			data["agent"] = "reachable"
		} else {
			data["agent"] = nil
			data["agent_error"] = agentErr.Error()
		}
		return out.Print(data)
	}

	fmt.Printf("Client: %s (protocol %d)\n", tetherversion.FormatVersion(clientVersion), tetherversion.Protocol)
	if agentErr == nil {
		fmt.Println("Agent: reachable")
	} else {
		fmt.Printf("Agent: unavailable (%v)\n", agentErr)
	}

	return nil
}
