package mcp

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/blueprint/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/blueprint/pkg/application"
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

type Server struct {
	mcpServer   *mcp.Server
	initSvc     *application.InitService
	planningSvc *application.PlanningService
	planSvc     *application.PlanService
	auditSvc    *application.AuditService
	root        string
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients.
// Internal details are omitted; only the friendly message is returned.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

func NewServer(root string) (*Server, error) {
	services, err := wiring.BuildAppServices(root)
	if err != nil {
		return nil, fmt.Errorf("build services: %w", err)
	}
	if services == nil {
		return nil, fmt.Errorf("services initialization returned nil")
	}

	info := mcp.ServerInfo{
		Name:    "blueprint",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Blueprint MCP Server"),
			mcp.WithDescription("Blueprint turns free-text goals into structured project plans and exposes them to MCP clients."),
			mcp.WithWebsiteURL("https://github.com/felixgeelhaar/blueprint"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use tools to generate a plan from a goal, read the persisted plan, and validate it."),
		),
		initSvc:     services.Init,
		planningSvc: services.Planning,
		planSvc:     services.Plan,
		auditSvc:    services.Audit,
		root:        root,
	}

	s.registerTools()
	return s, nil
}

type InitArgs struct {
	Name string `json:"name" jsonschema:"description=The name of the project"`
}

type GeneratePlanArgs struct {
	Goal string `json:"goal" jsonschema:"description=The free-text project goal to plan"`
}

func (s *Server) registerTools() {
	// Tool: blueprint_init
	s.mcpServer.Tool("blueprint_init").
		Description("Initialize a new blueprint workspace in the current directory").
		Handler(s.handleInit)

	// Tool: blueprint_generate_plan
	s.mcpServer.Tool("blueprint_generate_plan").
		Description("Generate a structured project plan from a free-text goal").
		Handler(s.handleGeneratePlan)

	// Tool: blueprint_get_plan
	s.mcpServer.Tool("blueprint_get_plan").
		Description("Retrieve the persisted plan document").
		Handler(s.handleGetPlan)

	// Tool: blueprint_validate_plan
	s.mcpServer.Tool("blueprint_validate_plan").
		Description("Validate the persisted plan against the consumer contract").
		Handler(s.handleValidatePlan)

	// Tool: blueprint_get_timeline
	s.mcpServer.Tool("blueprint_get_timeline").
		Description("Retrieve the workspace audit event timeline").
		Handler(s.handleGetTimeline)
}

func (s *Server) handleInit(ctx context.Context, args InitArgs) (string, error) {
	if err := s.initSvc.InitializeWorkspace(args.Name); err != nil {
		return "", mcpErr("Failed to initialize workspace. Check directory permissions and ensure the name is valid.")
	}
	return fmt.Sprintf("Workspace %s initialized successfully", args.Name), nil
}

func (s *Server) handleGeneratePlan(ctx context.Context, args GeneratePlanArgs) (any, error) {
	result, err := s.planningSvc.GeneratePlan(ctx, args.Goal)
	if err != nil {
		return nil, mcpErr("Failed to generate plan. Ensure the workspace is initialized and AI is allowed by policy.")
	}
	return result, nil
}

func (s *Server) handleGetPlan(ctx context.Context, args struct{}) (any, error) {
	p, err := s.planSvc.GetPlan()
	if err != nil {
		return nil, mcpErr("Failed to load plan. Generate a plan first with 'blueprint plan generate'.")
	}
	// Consumer view: runoff subtasks are trimmed on read.
	if p.Planner != nil {
		p.Planner.Subtasks = plan.SanitizeSubtasks(p.Planner.Subtasks)
	}
	return p, nil
}

func (s *Server) handleValidatePlan(ctx context.Context, args struct{}) (string, error) {
	if err := s.planSvc.Validate(); err != nil {
		return "", mcpErr(fmt.Sprintf("Plan is invalid: %v", err))
	}
	return "Plan is valid.", nil
}

func (s *Server) handleGetTimeline(ctx context.Context, args struct{}) (any, error) {
	events, err := s.auditSvc.GetTimeline()
	if err != nil {
		return nil, mcpErr("Failed to load the audit timeline.")
	}
	return events, nil
}

func (s *Server) Start() error {
	return s.StartStdio()
}

func (s *Server) StartStdio() error {
	return s.ServeStdio(context.Background())
}

func (s *Server) StartHTTP(addr string) error {
	return s.ServeHTTP(context.Background(), addr)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}
