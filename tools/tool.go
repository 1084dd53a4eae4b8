// Package tools defines the agent-callable functions and their registry.
package tools

import "context"

// Tool defines the interface for all agent-callable functions
type Tool interface {
	// Name returns the unique name of the tool (e.g. "get_flights")
	Name() string

	// Description returns a description of what the tool does and its argument
	Description() string

	// Execute runs the tool with the given free-text argument
	Execute(ctx context.Context, arg string) (interface{}, error)
}
