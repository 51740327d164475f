package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/protocol"
	"github.com/tether-ai/tether/internal/rpcerrors"
	"github.com/tether-ai/tether/internal/stream"
)

// newAgentCommand creates the agent command group.
func newAgentCommand() *cobra.Command {
	agentCmd := &cobra.Command{
		Use:           "agent",
		Short:         "Run prompts on the remote agent",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:           "run [prompt...]",
		Short:         "Run the agent with a prompt",
		Long:          "Run the agent with a prompt and print its result.\nWith --stream, progress events are rendered as they arrive and Ctrl+C\ncancels the run instead of killing the client.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAgentPrompt,
	}
	runCmd.Flags().Bool("stream", false, "Stream progress events while the run executes")
	runCmd.Flags().String("session", "", "Session id giving the run its terminal context")
	runCmd.Flags().String("mode", "", "Execution mode hint for the agent")
	runCmd.Flags().String("model", "", "Model override")
	runCmd.Flags().Int("max-turns", 0, "Cap on agent turns (0 uses the agent default)")
	runCmd.Flags().Int("max-retries", 0, "Cap on retries (0 uses the agent default)")
	runCmd.Flags().Duration("timeout", 0, "Overall run timeout enforced by the agent (0 means none)")
	runCmd.Flags().String("output-schema", "", "JSON schema the structured output must satisfy")
	runCmd.Flags().StringArray("option", nil, "Extra key=value option passed through to the agent (repeatable)")

	agentCmd.AddCommand(runCmd)
	return agentCmd
}

// runOptionsFromFlags collects the agent run options from command flags.
func runOptionsFromFlags(cmd *cobra.Command) (stream.RunOptions, error) {
	flags := cmd.Flags()

	pairs, _ := flags.GetStringArray("option")
	options, err := parseKeyValues(pairs)
	if err != nil {
		return stream.RunOptions{}, err
	}

	sessionID, _ := flags.GetString("session")
	mode, _ := flags.GetString("mode")
	model, _ := flags.GetString("model")
	maxTurns, _ := flags.GetInt("max-turns")
	maxRetries, _ := flags.GetInt("max-retries")
	timeout, _ := flags.GetDuration("timeout")
	outputSchema, _ := flags.GetString("output-schema")

	return stream.RunOptions{
		SessionID:    sessionID,
		Mode:         mode,
		Timeout:      timeout,
		Model:        model,
		MaxTurns:     maxTurns,
		MaxRetries:   maxRetries,
		OutputSchema: outputSchema,
		Options:      options,
	}, nil
}

// parseKeyValues turns repeated key=value flags into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q (want key=value)", pair)
		}
		values[key] = value
	}
	return values, nil
}

func runAgentPrompt(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	prompt := strings.Join(args, " ")

	opts, err := runOptionsFromFlags(cmd)
	if err != nil {
		return out.Error("Invalid agent options", err)
	}
	streaming, _ := cmd.Flags().GetBool("stream")

	t, _, err := connectTransport(cmd)
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}
	defer t.Close()

	client, err := t.Client()
	if err != nil {
		return out.Error("Failed to connect to agent", err)
	}

	// The run timeout rides the request and is enforced by the agent; the
	// client context gets slack on top so the remote timeout fires first.
	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout+5*time.Second)
		defer cancel()
	}

	if streaming {
		return runAgentStreaming(ctx, client.Agent(), out, prompt, opts)
	}

	result, err := client.RunAgent(ctx, stream.NewRunRequest(prompt, opts))
	if err != nil {
		return out.Error("Agent run failed", err)
	}
	if !result.GetSuccess() {
		msg := result.GetError()
		if msg == "" {
			msg = "agent run failed"
		}
		return out.Error("Agent run failed", rpcerrors.Session(msg))
	}
	return renderAgentResult(out, result, false)
}

func runAgentStreaming(ctx context.Context, agent apiv1.AgentServiceClient, out *OutputFormatter, prompt string, opts stream.RunOptions) error {
	run := stream.NewAgentStream(agent)
	run.OnEvent(func(event *apiv1.AgentStreamEvent) { renderAgentEvent(out, event) })

	// Ctrl+C cancels the run on the agent instead of killing the client.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	go func() {
		for range sigChan {
			fmt.Fprintln(os.Stderr, "\ncancelling agent run...")
			run.Cancel()
		}
	}()

	result, err := run.Start(ctx, prompt, opts)
	if err != nil {
		out.PrintText(func() { fmt.Println() })
		return out.Error("Agent run failed", err)
	}
	return renderAgentResult(out, result, true)
}

// renderAgentResult prints the terminal result. When the run was streamed
// the tokens already went to stdout, so only the summary is added.
func renderAgentResult(out *OutputFormatter, result *apiv1.AgentResult, streamed bool) error {
	data := map[string]interface{}{
		"request_id":  result.GetRequestId(),
		"success":     result.GetSuccess(),
		"text":        result.GetText(),
		"duration_ms": result.GetDurationMs(),
	}
	if so := result.GetStructuredOutput(); so != "" {
		data["structured_output"] = so
	}
	if usage := result.GetUsage(); usage != nil {
		data["usage"] = map[string]interface{}{
			"input_tokens":  usage.GetInputTokens(),
			"output_tokens": usage.GetOutputTokens(),
		}
	}

	return out.Render(CommandResult{
		Data: data,
		HumanReadable: func() error {
			if streamed {
				// Tokens were already printed; end the line they left open.
				fmt.Println()
			} else if text := result.GetText(); text != "" {
				fmt.Println(text)
			}
			if so := result.GetStructuredOutput(); so != "" {
				fmt.Println(so)
			}
			if usage := result.GetUsage(); usage != nil {
				fmt.Fprintf(os.Stderr, "tokens: %d in, %d out (%dms)\n",
					usage.GetInputTokens(), usage.GetOutputTokens(), result.GetDurationMs())
			}
			return nil
		},
	})
}

// renderAgentEvent prints one progress event. Tokens stream to stdout;
// everything else is progress chatter and goes to stderr.
func renderAgentEvent(out *OutputFormatter, event *apiv1.AgentStreamEvent) {
	if out.jsonMode {
		return
	}
	switch event.GetType() {
	case protocol.AgentEventToken:
		fmt.Print(event.GetToken())
	case protocol.AgentEventThinking:
		fmt.Fprintf(os.Stderr, "[thinking] %s\n", event.GetText())
	case protocol.AgentEventToolStart:
		fmt.Fprintf(os.Stderr, "[tool] %s...\n", event.GetToolName())
	case protocol.AgentEventToolEnd:
		fmt.Fprintf(os.Stderr, "[tool] %s done\n", event.GetToolName())
	case protocol.AgentEventHandOff:
		fmt.Fprintf(os.Stderr, "[handoff] %s\n", event.GetText())
	case protocol.AgentEventCancelled:
		fmt.Fprintln(os.Stderr, "[cancelled]")
	case protocol.AgentEventResult:
		// The terminal result is rendered once Start returns.
	}
}
