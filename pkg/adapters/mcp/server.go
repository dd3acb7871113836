// Package mcp exposes the intake core as a Model Context Protocol server,
// so an LLM dialogue driver can hand over completed intakes as tool calls
// and read the catalog as a resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/pkg/domain"
	"github.com/aretw0/labscout/pkg/ports"
)

// Server wraps a Consultant and exposes it as an MCP Server.
type Server struct {
	consultant *labscout.Consultant
	logger     *slog.Logger
	mcpServer  *server.MCPServer
	now        func() time.Time
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(consultant *labscout.Consultant, opts ...Option) *Server {
	s := &Server{
		consultant: consultant,
		logger:     slog.Default(),
		mcpServer:  server.NewMCPServer("labscout-mcp", strings.TrimSpace(labscout.Version)),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: capture_lab_requirements
	triageTool := mcp.NewTool("capture_lab_requirements",
		mcp.WithDescription("Submit the completed lab-automation triage intake. Call exactly once, after problem_domain, samples_per_day and current_process have all been collected. Returns the rendered solution proposal."),
		mcp.WithString("problem_domain", mcp.Required(), mcp.Description("The main lab bottleneck to be automated, e.g. 'weighing' or 'sample handling logistics'")),
		mcp.WithNumber("samples_per_day", mcp.Required(), mcp.Description("Samples the lab needs to process per day (whole number, not negative)")),
		mcp.WithString("current_process", mcp.Required(), mcp.Description("Brief description of the current manual process")),
		mcp.WithString("budget", mcp.Description("Estimated budget, e.g. 'under 100k' (optional)")),
		mcp.WithString("intake_id", mcp.Description("Identifier for archiving the report (optional)")),
	)
	s.mcpServer.AddTool(triageTool, s.handleCaptureRequirements)

	// TOOL: draft_station_spec
	specTool := mcp.NewTool("draft_station_spec",
		mcp.WithDescription("Submit the completed weighing-station interview. Call exactly once, after all eight answers have been collected. Returns the drafted requirements specification document."),
		mcp.WithString("project_scope", mcp.Required(), mcp.Description("Summary of what the station needs to do")),
		mcp.WithString("throughput", mcp.Required(), mcp.Description("Required throughput, e.g. '84 compounds per day'")),
		mcp.WithString("weighing_specs", mcp.Required(), mcp.Description("Weighing range and precision, e.g. '0.2mg - 100g'")),
		mcp.WithArray("chemical_types", mcp.Required(), mcp.Description("Chemical categories to handle"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("labware_containers", mcp.Required(), mcp.Description("Source and destination containers"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("identification_labeling", mcp.Required(), mcp.Description("Barcode and labeling requirements")),
		mcp.WithString("data_handling", mcp.Required(), mcp.Description("Worklist import/export requirements")),
		mcp.WithArray("workflow_use_cases", mcp.Required(), mcp.Description("Weighing workflows, e.g. 'one-to-many'"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("intake_id", mcp.Description("Identifier for archiving the report (optional)")),
	)
	s.mcpServer.AddTool(specTool, s.handleDraftStationSpec)

	// TOOL: list_catalog
	s.mcpServer.AddTool(mcp.NewTool("list_catalog",
		mcp.WithDescription("List the problem domains the solution catalog covers, with the solutions per domain."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.catalogListing())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("catalog listing failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleCaptureRequirements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	record, err := s.consultant.ConstructTriageFromMap(args)
	if err != nil {
		// Tool error, not protocol error: the driver re-prompts and retries.
		s.logger.Warn("triage intake rejected", "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("intake incomplete: %v", err)), nil
	}

	report := s.consultant.MatchAndRender(record)
	s.archive(ctx, args, labscout.FlowTriage, report)
	return mcp.NewToolResultText(report), nil
}

// stationSpecArgs mirrors the draft_station_spec tool schema.
type stationSpecArgs struct {
	ProjectScope           string   `mapstructure:"project_scope"`
	Throughput             string   `mapstructure:"throughput"`
	WeighingSpecs          string   `mapstructure:"weighing_specs"`
	ChemicalTypes          []string `mapstructure:"chemical_types"`
	LabwareContainers      []string `mapstructure:"labware_containers"`
	IdentificationLabeling string   `mapstructure:"identification_labeling"`
	DataHandling           string   `mapstructure:"data_handling"`
	WorkflowUseCases       []string `mapstructure:"workflow_use_cases"`
}

func (s *Server) handleDraftStationSpec(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var decoded stationSpecArgs
	if err := mapstructure.Decode(args, &decoded); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("malformed arguments: %v", err)), nil
	}

	record, err := s.consultant.ConstructSpecification(
		decoded.ProjectScope,
		decoded.Throughput,
		decoded.WeighingSpecs,
		decoded.ChemicalTypes,
		decoded.LabwareContainers,
		decoded.IdentificationLabeling,
		decoded.DataHandling,
		decoded.WorkflowUseCases,
	)
	if err != nil {
		s.logger.Warn("specification intake rejected", "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("intake incomplete: %v", err)), nil
	}

	report := s.consultant.RenderSpecification(record)
	s.archive(ctx, args, labscout.FlowSpecification, report)
	return mcp.NewToolResultText(report), nil
}

// archive persists the report when an archive is configured, keyed by the
// caller's intake_id or a timestamp. Failures are logged, never surfaced:
// the report has already been produced.
func (s *Server) archive(ctx context.Context, args map[string]any, flow, report string) {
	id, _ := args["intake_id"].(string)
	if id == "" {
		id = s.now().UTC().Format("20060102T150405Z")
	}
	err := s.consultant.ArchiveReport(ctx, ports.ArchivedReport{
		ID:      id,
		Flow:    flow,
		Content: report,
	})
	if err != nil {
		s.logger.Warn("report archive failed", "intake", id, "flow", flow, "err", err)
	}
}

type catalogDomainListing struct {
	Domain    string                      `json:"domain"`
	Solutions []domain.SolutionDescriptor `json:"solutions"`
}

func (s *Server) catalogListing() []catalogDomainListing {
	c := s.consultant.Catalog()
	listing := make([]catalogDomainListing, 0, c.Len())
	for _, key := range c.Domains() {
		solutions, _ := c.Lookup(key)
		listing = append(listing, catalogDomainListing{Domain: key, Solutions: solutions})
	}
	return listing
}

func (s *Server) registerResources() {
	// EXPOSE: labscout://catalog
	s.mcpServer.AddResource(mcp.NewResource("labscout://catalog", "Solution Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalogListing())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "labscout://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
