package tools

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool results are always a JSON object: the remote payload on success,
// or {"error": <message>} on any failure. Failures never propagate as
// protocol errors across the invocation boundary — a bad call must not
// crash the host session, and the shape alone distinguishes outcomes.

// JSONResult creates a success result holding the payload as indented JSON.
func JSONResult(payload any) *mcp.CallToolResult {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return ErrorResult(err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(encoded)},
		},
	}
}

// ErrorResult creates an error result carrying {"error": <message>}.
// IsError is set so the calling LLM can see the failure and self-correct.
func ErrorResult(err error) *mcp.CallToolResult {
	encoded, _ := json.Marshal(map[string]string{"error": err.Error()})
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(encoded)},
		},
		IsError: true,
	}
}
