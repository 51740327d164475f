package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/config/store"
	"github.com/tether-ai/tether/internal/grpcclient"
)

// newStatusCommand creates the status command.
func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Show agent reachability and session count",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)

	settings, err := settingsFromCommand(cmd, storedSettings())
	if err != nil {
		return out.Error("Invalid connection settings", err)
	}

	// Discovery is shown even though the transport repeats it internally;
	// an explicit address skips it entirely.
	var desc *grpcclient.Descriptor
	var descPath string
	if settings.Address == "" {
		desc, descPath = grpcclient.FindDescriptor(settings.DescriptorPath)
		if desc == nil {
			return out.Error("No agent found", fmt.Errorf("no descriptor under %s (is the agent running?)", config.GetTetherHome()))
		}
	}

	t := grpcclient.New(settings)
	ctx, cancel := context.WithTimeout(context.Background(), settings.DialTimeout)
	err = t.Connect(ctx)
	cancel()
	if err != nil {
		return out.Error("Agent is not reachable", err)
	}
	defer t.Close()

	client, err := t.Client()
	if err != nil {
		return out.Error("Agent is not reachable", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	sessions, err := client.ListSessions(ctx, "")
	cancel()
	if err != nil {
		return out.Error("Failed to query agent", err)
	}

	recordKnownAgent(settings, desc)

	data := map[string]interface{}{
		"running":  true,
		"sessions": len(sessions),
	}
	if settings.AgentID != "" {
		data["agent_id"] = settings.AgentID
	}
	if desc != nil {
		data["address"] = desc.Address
		data["transport"] = desc.TransportKind
		data["pid"] = desc.PID
		data["started_at"] = desc.StartedAt.Format(time.RFC3339)
		data["descriptor"] = descPath
	} else {
		data["address"] = settings.Address
	}

	return out.Render(CommandResult{
		Data: data,
		HumanReadable: func() error {
			fmt.Println("Agent: running")
			if desc != nil {
				fmt.Printf("  Address:    %s (%s)\n", desc.Address, desc.TransportKind)
				fmt.Printf("  PID:        %d\n", desc.PID)
				fmt.Printf("  Started:    %s\n", desc.StartedAt.Format(time.RFC3339))
				fmt.Printf("  Descriptor: %s\n", descPath)
			} else {
				fmt.Printf("  Address:    %s\n", settings.Address)
			}
			if settings.AgentID != "" {
				fmt.Printf("  Agent ID:   %s\n", settings.AgentID)
			}
			fmt.Printf("  Sessions:   %d\n", len(sessions))
			return nil
		},
	})
}

// recordKnownAgent keeps the known-agents registry current after a
// successful health check. Registry failures never fail the command.
func recordKnownAgent(settings *config.Settings, desc *grpcclient.Descriptor) {
	agent := store.Agent{ID: settings.AgentID}
	if agent.ID == "" {
		agent.ID = "local"
	}
	if desc != nil {
		agent.Address = desc.Address
		agent.Transport = desc.TransportKind
		agent.TokenPath = desc.TokenPath
	} else {
		agent.Address = settings.Address
		agent.Transport = grpcclient.TransportTCP
	}

	st, err := store.Open(store.Options{})
	if err != nil {
		log.Printf("[cli] open settings store: %v", err)
		return
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := st.SaveAgent(ctx, agent); err != nil {
		log.Printf("[cli] record agent: %v", err)
		return
	}
	if err := st.TouchAgent(ctx, agent.ID); err != nil {
		log.Printf("[cli] record agent: %v", err)
	}
}
