package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Reply
	}{
		{
			name: "FunctionCallWithArg",
			in:   "FUNCTION_CALL: get_weather_forecast|Phoenix, Arizona",
			want: Reply{Kind: ReplyCall, Name: "get_weather_forecast", Arg: "Phoenix, Arizona"},
		},
		{
			name: "FunctionCallNoArg",
			in:   "FUNCTION_CALL: get_city_location",
			want: Reply{Kind: ReplyCall, Name: "get_city_location"},
		},
		{
			name: "FunctionCallSurroundingWhitespace",
			in:   "  FUNCTION_CALL:  get_flights | 2026-08-29  \n",
			want: Reply{Kind: ReplyCall, Name: "get_flights", Arg: "2026-08-29"},
		},
		{
			name: "FinalAnswer",
			in:   "FINAL_ANSWER: [flight_data]",
			want: Reply{Kind: ReplyFinalAnswer, Answer: "[flight_data]"},
		},
		{
			name: "EmptyFunctionName",
			in:   "FUNCTION_CALL: |arg",
			want: Reply{Kind: ReplyUnrecognized},
		},
		{
			name: "FreeText",
			in:   "Sure! Let me think about which function to call.",
			want: Reply{Kind: ReplyUnrecognized},
		},
		{
			name: "MarkerNotAtStart",
			in:   "I will now emit FUNCTION_CALL: get_flights|x",
			want: Reply{Kind: ReplyUnrecognized},
		},
		{
			name: "Empty",
			in:   "",
			want: Reply{Kind: ReplyUnrecognized},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReply(tt.in))
		})
	}
}
