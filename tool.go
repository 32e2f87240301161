package memochat

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
)

// ErrInvalidToolSchema is returned when a tool schema is invalid.
var ErrInvalidToolSchema = errors.New("invalid tool schema")

// Tool is a function the assistant can call during a chat turn.
type Tool interface {
	// Name returns the tool's unique name.
	Name() string

	// Description tells the model what the tool does.
	Description() string

	// InputSchema describes the tool's JSON input. Type must be "object".
	InputSchema() ToolSchema

	// Execute runs the tool and returns its output.
	Execute(ctx context.Context, input json.RawMessage) (string, error)
}

// ToolSchema is a JSON schema for tool input.
type ToolSchema struct {
	Type       string                 `json:"type"`
	Properties map[string]PropertyDef `json:"properties,omitempty"`
	Required   []string               `json:"required,omitempty"`
}

// PropertyDef describes one property of a tool schema.
type PropertyDef struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// anthropicToolParams converts the registered tools for the API request.
func (c *Client) anthropicToolParams() []anthropic.ToolUnionParam {
	if len(c.config.tools) == 0 {
		return nil
	}

	unions := make([]anthropic.ToolUnionParam, 0, len(c.config.tools))
	for _, t := range c.config.tools {
		schema := t.InputSchema()

		properties := make(map[string]any, len(schema.Properties))
		for name, def := range schema.Properties {
			prop := map[string]any{"type": def.Type}
			if def.Description != "" {
				prop["description"] = def.Description
			}
			if len(def.Enum) > 0 {
				prop["enum"] = def.Enum
			}
			properties[name] = prop
		}

		inputSchema := anthropic.ToolInputSchemaParam{
			Type:       constant.Object("object"),
			Properties: properties,
		}
		if len(schema.Required) > 0 {
			inputSchema.Required = schema.Required
		}

		param := anthropic.ToolParam{
			Name:        t.Name(),
			Description: anthropic.String(t.Description()),
			InputSchema: inputSchema,
		}
		unions = append(unions, anthropic.ToolUnionParam{OfTool: &param})
	}

	return unions
}
