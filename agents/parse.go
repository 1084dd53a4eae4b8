// Package agents runs the bounded model-driven loop that chooses which
// pipeline step to call next.
package agents

import "strings"

// ReplyKind classifies a model reply
type ReplyKind int

const (
	// ReplyUnrecognized means the reply matched neither protocol line;
	// the round is a no-op.
	ReplyUnrecognized ReplyKind = iota
	// ReplyCall is a "FUNCTION_CALL: name|arg" line
	ReplyCall
	// ReplyFinalAnswer is a "FINAL_ANSWER: value" line
	ReplyFinalAnswer
)

// Reply is the parsed form of a model response
type Reply struct {
	Kind   ReplyKind
	Name   string // set for ReplyCall
	Arg    string // set for ReplyCall
	Answer string // set for ReplyFinalAnswer
}

// ParseReply classifies a raw model response into exactly one variant.
// Anything that does not start with one of the two protocol markers is
// Unrecognized.
func ParseReply(text string) Reply {
	text = strings.TrimSpace(text)

	if rest, ok := strings.CutPrefix(text, "FUNCTION_CALL:"); ok {
		name, arg, _ := strings.Cut(strings.TrimSpace(rest), "|")
		name = strings.TrimSpace(name)
		if name == "" {
			return Reply{Kind: ReplyUnrecognized}
		}
		return Reply{Kind: ReplyCall, Name: name, Arg: strings.TrimSpace(arg)}
	}

	if rest, ok := strings.CutPrefix(text, "FINAL_ANSWER:"); ok {
		return Reply{Kind: ReplyFinalAnswer, Answer: strings.TrimSpace(rest)}
	}

	return Reply{Kind: ReplyUnrecognized}
}
