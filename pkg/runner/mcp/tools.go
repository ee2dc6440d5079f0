package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todos/pkg/runner/list"
)

const indexDescription = "Index of the entry in the current filtered view, as returned by list_entries."

func registerTools(srv *server.MCPServer, svc *Service) {
	for _, t := range tools(svc) {
		srv.AddTool(t.tool, t.handler)
	}
}

type toolDef struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func tools(svc *Service) []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("add_entry",
				mcp.WithDescription("Add a new open entry at the end of the list."),
				mcp.WithString("description",
					mcp.Required(),
					mcp.Description("Text of the entry."),
				),
			),
			handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				text, err := request.RequireString("description")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toResult(svc.Add(ctx, text))
			},
		},
		indexTool("toggle_entry", "Toggle an entry between open and completed.", svc.Toggle),
		indexTool("toggle_edit", "Enter or leave edit mode for an entry.", svc.ToggleEdit),
		{
			tool: mcp.NewTool("complete_edit",
				mcp.WithDescription("Replace the description of an entry and leave it open."),
				mcp.WithNumber("index", mcp.Required(), mcp.Description(indexDescription)),
				mcp.WithString("description",
					mcp.Required(),
					mcp.Description("New text of the entry."),
				),
			),
			handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				i, err := request.RequireInt("index")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				text, err := request.RequireString("description")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toResult(svc.CompleteEdit(ctx, i, text))
			},
		},
		indexTool("remove_entry", "Remove an entry.", svc.Remove),
		{
			tool: mcp.NewTool("toggle_all",
				mcp.WithDescription("Complete every visible entry, or reopen them all if they are already completed."),
			),
			handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toResult(svc.ToggleAll(ctx))
			},
		},
		{
			tool: mcp.NewTool("clear_completed",
				mcp.WithDescription("Remove every completed entry regardless of the filter."),
			),
			handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toResult(svc.ClearCompleted(ctx))
			},
		},
		{
			tool: mcp.NewTool("set_filter",
				mcp.WithDescription("Change which entries are visible. Indices of the other tools follow the filter."),
				mcp.WithString("filter",
					mcp.Required(),
					mcp.Description("One of all, active, completed, search or search:<text>."),
				),
			),
			handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				name, err := request.RequireString("filter")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toResult(svc.SetFilter(ctx, name))
			},
		},
		{
			tool: mcp.NewTool("search",
				mcp.WithDescription("Narrow the list to entries containing the text, ignoring case. Repeated searches narrow further; an empty text restores the full list."),
				mcp.WithString("text",
					mcp.Description("Text to look for. Leave empty to end the search."),
				),
			),
			handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toResult(svc.Search(ctx, request.GetString("text", "")))
			},
		},
		{
			tool: mcp.NewTool("list_entries",
				mcp.WithDescription("List the entries of the current filtered view with their indices and counters."),
			),
			handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toResult(svc.List(ctx))
			},
		},
	}
}

func indexTool(name, description string, op func(context.Context, int) (list.Listing, error)) toolDef {
	return toolDef{
		tool: mcp.NewTool(name,
			mcp.WithDescription(description),
			mcp.WithNumber("index", mcp.Required(), mcp.Description(indexDescription)),
		),
		handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			i, err := request.RequireInt("index")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toResult(op(ctx, i))
		},
	}
}

func toResult(listing list.Listing, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.Marshal(listing)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
