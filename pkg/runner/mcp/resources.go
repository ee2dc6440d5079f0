package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	entriesURI = "todos://entries"
	filtersURI = "todos://filters"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	srv.AddResource(mcp.NewResource(
		entriesURI,
		"Entries",
		mcp.WithResourceDescription("The current filtered view with indices and counters."),
		mcp.WithMIMEType("application/json"),
	), entriesResource(svc))

	srv.AddResource(mcp.NewResource(
		filtersURI,
		"Filters",
		mcp.WithResourceDescription("Every filter with its link, marking the active one."),
		mcp.WithMIMEType("application/json"),
	), filtersResource(svc))
}

func entriesResource(svc *Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		listing, err := svc.List(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, listing)
	}
}

func filtersResource(svc *Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		filters, err := svc.Filters(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"filters": filters,
		})
	}
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
