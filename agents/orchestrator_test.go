package agents

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adisuri/weekendwings/tools"
)

// scriptedLLM replays a fixed sequence of model replies
type scriptedLLM struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "", fmt.Errorf("script exhausted")
}

// recordingTool returns a constant result and counts invocations
type recordingTool struct {
	name   string
	result interface{}
	calls  int
}

func (r *recordingTool) Name() string        { return r.name }
func (r *recordingTool) Description() string { return "test tool" }
func (r *recordingTool) Execute(ctx context.Context, arg string) (interface{}, error) {
	r.calls++
	return r.result, nil
}

func registryWith(ts ...tools.Tool) func() *tools.Registry {
	return func() *tools.Registry {
		reg := tools.NewRegistry()
		for _, t := range ts {
			reg.Register(t)
		}
		return reg
	}
}

func TestOrchestrator_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("FinalAnswerReturnsLastResult", func(t *testing.T) {
		forecast := &recordingTool{name: "get_weather_forecast", result: "forecast-data"}
		flights := &recordingTool{name: "get_flights", result: "flight-data"}
		llm := &scriptedLLM{replies: []string{
			"FUNCTION_CALL: get_weather_forecast|",
			"FUNCTION_CALL: get_flights|",
			"FINAL_ANSWER: [flight_data]",
		}}
		o := &Orchestrator{LLM: llm, NewRegistry: registryWith(forecast, flights)}

		result, err := o.Run(ctx, "find me cool weekend flights")

		require.NoError(t, err)
		assert.Equal(t, "flight-data", result)
		assert.Equal(t, 1, forecast.calls)
		assert.Equal(t, 1, flights.calls)
		assert.Equal(t, 3, llm.calls)

		// The transcript of prior calls feeds the later prompts.
		assert.Contains(t, llm.prompts[1], "get_weather_forecast")
		assert.Contains(t, llm.prompts[1], "What should I do next?")
	})

	t.Run("CapReachedReturnsLastResult", func(t *testing.T) {
		tool := &recordingTool{name: "get_weather_forecast", result: "forecast-data"}
		llm := &scriptedLLM{replies: []string{
			"FUNCTION_CALL: get_weather_forecast|",
			"FUNCTION_CALL: get_weather_forecast|",
			"FUNCTION_CALL: get_weather_forecast|",
			"FINAL_ANSWER: never reached",
		}}
		o := &Orchestrator{LLM: llm, NewRegistry: registryWith(tool)}

		result, err := o.Run(ctx, "query")

		require.NoError(t, err)
		assert.Equal(t, "forecast-data", result)
		// The loop stops at the cap, not at the scripted final answer.
		assert.Equal(t, 3, llm.calls)
		assert.Equal(t, 3, tool.calls)
	})

	t.Run("NoToolEverRan", func(t *testing.T) {
		llm := &scriptedLLM{replies: []string{
			"thinking out loud",
			"still thinking",
			"FINAL_ANSWER: done",
		}}
		o := &Orchestrator{LLM: llm, NewRegistry: registryWith()}

		result, err := o.Run(ctx, "query")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("UnrecognizedReplyConsumesIteration", func(t *testing.T) {
		tool := &recordingTool{name: "get_flights", result: "flight-data"}
		llm := &scriptedLLM{replies: []string{
			"I think I should call something",
			"nope, still prose",
			"also prose",
		}}
		o := &Orchestrator{LLM: llm, NewRegistry: registryWith(tool)}

		result, err := o.Run(ctx, "query")
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 3, llm.calls)
		assert.Equal(t, 0, tool.calls)
	})

	t.Run("UnknownFunctionIsNotAFault", func(t *testing.T) {
		llm := &scriptedLLM{replies: []string{
			"FUNCTION_CALL: launch_rocket|now",
			"FINAL_ANSWER: done",
		}}
		o := &Orchestrator{LLM: llm, NewRegistry: registryWith()}

		result, err := o.Run(ctx, "query")
		require.NoError(t, err)
		assert.Nil(t, result)
		// The failed call is reported back to the model in the transcript.
		assert.Contains(t, llm.prompts[1], "launch_rocket")
		assert.Contains(t, llm.prompts[1], "failed")
	})

	t.Run("LLMErrorPropagates", func(t *testing.T) {
		llm := &scriptedLLM{errs: []error{fmt.Errorf("rate limited")}}
		o := &Orchestrator{LLM: llm, NewRegistry: registryWith()}

		_, err := o.Run(ctx, "query")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "llm generation failed")
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		o := &Orchestrator{LLM: &scriptedLLM{}, NewRegistry: registryWith()}

		_, err := o.Run(cancelled, "query")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
