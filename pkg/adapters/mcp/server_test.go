package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/pkg/consult"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestHandleCaptureRequirements_Matched(t *testing.T) {
	s := NewServer(labscout.New())

	result, err := s.handleCaptureRequirements(context.Background(), callRequest(map[string]any{
		"problem_domain":  "Weighing",
		"samples_per_day": float64(84),
		"current_process": "manual weighing",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	report := resultText(t, result)
	require.Contains(t, report, "Automated Weighing Station (URS APL01)")
	require.Contains(t, report, "Manual Computer-Assisted Weighing Station (URS APL02)")
}

func TestHandleCaptureRequirements_NoMatchIsStillSuccess(t *testing.T) {
	s := NewServer(labscout.New())

	result, err := s.handleCaptureRequirements(context.Background(), callRequest(map[string]any{
		"problem_domain":  "data_analysis",
		"samples_per_day": float64(10),
		"current_process": "spreadsheets",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, "NoMatch must not be a tool error")
	require.True(t, strings.HasPrefix(resultText(t, result), consult.NoMatchPrefix))
}

func TestHandleCaptureRequirements_ValidationIsToolError(t *testing.T) {
	s := NewServer(labscout.New())

	result, err := s.handleCaptureRequirements(context.Background(), callRequest(map[string]any{
		"problem_domain":  "weighing",
		"samples_per_day": float64(-5),
		"current_process": "manual weighing",
	}))
	require.NoError(t, err, "validation failures are tool errors, not protocol errors")
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "samples_per_day")
}

func TestHandleDraftStationSpec(t *testing.T) {
	s := NewServer(labscout.New())

	result, err := s.handleDraftStationSpec(context.Background(), callRequest(map[string]any{
		"project_scope":           "Automate weighing of solids and liquids",
		"throughput":              "84 compounds per day",
		"weighing_specs":          "0.2mg - 100g",
		"chemical_types":          []any{"Powder", "Flakes"},
		"labware_containers":      []any{"8ml vials"},
		"identification_labeling": "barcodes both directions",
		"data_handling":           "CSV worklists",
		"workflow_use_cases":      []any{"one-to-many"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	report := resultText(t, result)
	require.Contains(t, report, "### 1. Project Scope")
	require.Contains(t, report, "### 8. Workflows / Use Cases")
	require.Contains(t, report, "* Powder")
}

func TestHandleDraftStationSpec_MissingFields(t *testing.T) {
	s := NewServer(labscout.New())

	result, err := s.handleDraftStationSpec(context.Background(), callRequest(map[string]any{
		"project_scope": "Automate weighing",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "intake incomplete")
}

func TestCatalogListing(t *testing.T) {
	s := NewServer(labscout.New())

	listing := s.catalogListing()
	require.Len(t, listing, 2)
	require.Equal(t, "sample_handling_logistics", listing[0].Domain)
	require.Equal(t, "weighing", listing[1].Domain)
	require.Len(t, listing[1].Solutions, 2)
}
