package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/adisuri/weekendwings/log"
	"github.com/adisuri/weekendwings/tools"
)

// LLMClient defines the interface for LLM interaction
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// maxIterations caps the agent loop. The counter advances every pass,
// including no-op rounds from unrecognized replies.
const maxIterations = 3

const systemPromptTemplate = `You are a travel agent which helps in getting flight details for cool destinations from the user's origin. Respond with EXACTLY ONE of these formats:
1. FUNCTION_CALL: function_name|input
2. FINAL_ANSWER: [flight_data]

where function_name is one of the following:
%s
DO NOT include multiple responses. Give ONE response at a time.`

// Orchestrator drives the pipeline by asking a completion model which
// function to call next. Each Run builds a fresh tool registry so tool state
// stays request-scoped.
type Orchestrator struct {
	LLM         LLMClient
	NewRegistry func() *tools.Registry
}

// Run executes the bounded agent loop for one query. It returns the most
// recent tool result: on FINAL_ANSWER, or when the iteration cap is reached
// without one (nil if no tool ever ran).
func (o *Orchestrator) Run(ctx context.Context, query string) (interface{}, error) {
	registry := o.NewRegistry()
	systemPrompt := fmt.Sprintf(systemPromptTemplate, toolCatalog(registry))

	var (
		lastResult interface{}
		transcript []string
	)
	currentQuery := query

	for iteration := 0; iteration < maxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return lastResult, ctx.Err()
		default:
		}

		log.Infof(ctx, "agent iteration %d/%d", iteration+1, maxIterations)

		prompt := fmt.Sprintf("%s\n\nQuery: %s", systemPrompt, currentQuery)
		response, err := o.LLM.GenerateContent(ctx, prompt)
		if err != nil {
			return lastResult, fmt.Errorf("llm generation failed: %w", err)
		}

		reply := ParseReply(response)
		switch reply.Kind {
		case ReplyCall:
			result, err := registry.Execute(ctx, reply.Name, reply.Arg)
			var summary string
			if err != nil {
				log.Warnf(ctx, "tool %s failed: %v", reply.Name, err)
				summary = fmt.Sprintf("In iteration %d you called %s with %q parameters, and it failed with: %v.",
					iteration+1, reply.Name, reply.Arg, err)
			} else {
				lastResult = result
				summary = fmt.Sprintf("In iteration %d you called %s with %q parameters, and the function returned %v.",
					iteration+1, reply.Name, reply.Arg, result)
			}
			transcript = append(transcript, summary)
			currentQuery = query + "\n\n" + strings.Join(transcript, " ") + "  What should I do next?"

		case ReplyFinalAnswer:
			log.Infof(ctx, "agent finished with final answer")
			return lastResult, nil

		case ReplyUnrecognized:
			log.Warnf(ctx, "ignoring non-conforming model reply: %q", response)
		}
	}

	log.Warnf(ctx, "agent reached iteration cap without a final answer")
	return lastResult, nil
}

// toolCatalog renders the numbered tool list injected into the system prompt
func toolCatalog(registry *tools.Registry) string {
	var b strings.Builder
	for i, t := range registry.Tools() {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, t.Name(), t.Description())
	}
	return b.String()
}
