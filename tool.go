package ragent

import (
	"context"

	"github.com/jmadeira/ragent/schema"
)

// Tool is a single callable action the model can request during an LLM program
// invocation. Tools focus on business logic; argument parsing, schema
// validation, and formatting the output back onto the log are handled by the
// LLM program.
type Tool interface {
	// Name returns the tool's identifier used in tool calls.
	Name() string

	// Description returns a human-readable description for the LLM.
	Description() string

	// Parameters returns the JSON Schema for the tool's arguments.
	// Returns nil if the tool takes no arguments.
	Parameters() *schema.Schema

	// Call executes the tool with arguments already validated against
	// Parameters. The returned string is recorded on the log as a tool
	// message.
	Call(ctx context.Context, args map[string]any) (string, error)
}

// ToolFunc is a convenience implementation of Tool backed by a function.
type ToolFunc struct {
	name        string
	description string
	params      *schema.Schema
	fn          func(ctx context.Context, args map[string]any) (string, error)
}

// NewToolFunc creates a Tool from a function.
//
// Example:
//
//	lookup := ragent.NewToolFunc(
//	    "lookup_order",
//	    "Look up order details by order ID",
//	    schema.Object(map[string]*schema.Property{
//	        "order_id": schema.String("The order ID"),
//	    }, "order_id"),
//	    func(ctx context.Context, args map[string]any) (string, error) {
//	        return lookupOrderFromDB(args["order_id"].(string))
//	    },
//	)
func NewToolFunc(
	name, description string,
	params *schema.Schema,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *ToolFunc {
	return &ToolFunc{
		name:        name,
		description: description,
		params:      params,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc) Name() string {
	return t.name
}

// Description returns a human-readable description for the LLM.
func (t *ToolFunc) Description() string {
	return t.description
}

// Parameters returns the JSON Schema for the tool's arguments.
func (t *ToolFunc) Parameters() *schema.Schema {
	return t.params
}

// Call executes the tool function.
func (t *ToolFunc) Call(ctx context.Context, args map[string]any) (string, error) {
	return t.fn(ctx, args)
}

// Compile-time check.
var _ Tool = (*ToolFunc)(nil)
