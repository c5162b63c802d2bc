package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/blueprint/pkg/domain"
	"github.com/felixgeelhaar/blueprint/pkg/domain/ai"
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

// PlanningService runs the goal-to-plan pipeline: classify the goal, prompt
// the model, parse, enhance shallow output, complete the structure, persist.
// Every stage except persistence degrades instead of failing.
type PlanningService struct {
	repo     domain.WorkspaceRepository
	provider ai.Provider
	audit    domain.AuditLogger
}

func NewPlanningService(repo domain.WorkspaceRepository, provider ai.Provider, audit domain.AuditLogger) *PlanningService {
	return &PlanningService{repo: repo, provider: provider, audit: audit}
}

// GetAuditLogger returns the audit logger used by this service.
func (s *PlanningService) GetAuditLogger() domain.AuditLogger {
	return s.audit
}

// PlanResult is the outcome of one pipeline run. Degraded reports that some
// stage fell back (classification miss, unparseable model output) while still
// producing a usable plan.
type PlanResult struct {
	Plan           *plan.Plan
	Subtasks       []string
	Degraded       bool
	DegradedReason string
	UsedFallback   bool
	States         []string
}

const defaultPlanTokenBudget = 2000

// GeneratePlan turns a free-text goal into a persisted plan document. The
// only error it returns for a reachable provider is a persistence failure;
// everything upstream of SavePlan degrades into the fallback plan instead.
func (s *PlanningService) GeneratePlan(ctx context.Context, goal string) (*PlanResult, error) {
	if goal == "" {
		return nil, fmt.Errorf("goal cannot be empty")
	}

	// 1. Check Policy & Budget
	cfg, err := s.repo.LoadPolicy()
	if err != nil {
		return nil, err
	}
	if !cfg.AllowAI {
		return nil, fmt.Errorf("AI usage is disabled by project policy")
	}

	if cfg.TokenLimit > 0 {
		stats, _ := s.repo.LoadUsage()
		if stats != nil {
			totalTokens := 0
			for _, count := range stats.ProviderStats {
				totalTokens += count
			}
			if totalTokens >= cfg.TokenLimit {
				return nil, fmt.Errorf("AI token limit reached (%d/%d). Please increase limit in policy.yaml", totalTokens, cfg.TokenLimit)
			}
		}
	}

	submittedAt := time.Now()
	result := &PlanResult{}

	machine, err := plan.NewPipelineMachine(goal)
	if err != nil {
		return nil, err
	}
	result.States = append(result.States, machine.Current())

	// 2. Classify the goal
	classification := ClassifyGoal(ctx, s.provider, goal)
	if classification.Degraded {
		result.Degraded = true
		result.DegradedReason = classification.Reason
	}
	_ = s.audit.Log("plan.classify", "ai", map[string]interface{}{
		"domain":   classification.Domain.String(),
		"degraded": classification.Degraded,
	})

	if err := machine.Transition(plan.EventClassified); err != nil {
		return nil, err
	}
	result.States = append(result.States, machine.Current())

	// 3. Prompt the model
	budget := cfg.PlanTokenBudget
	if budget <= 0 {
		budget = defaultPlanTokenBudget
	}

	var usage ai.TokenUsage
	var model string
	p, parseErr := s.requestPlan(ctx, goal, classification.Domain, budget, &usage, &model)

	if parseErr != nil {
		// 4a. Fallback: a parse or provider failure never kills the run.
		_ = s.audit.Log("plan.fallback", "ai", map[string]interface{}{
			"reason": parseErr.Error(),
		})
		if err := machine.Transition(plan.EventParseFailed); err != nil {
			return nil, err
		}
		result.States = append(result.States, machine.Current())

		p = plan.Fallback(goal, classification.Domain)
		result.UsedFallback = true
		result.Degraded = true
		if result.DegradedReason == "" {
			result.DegradedReason = parseErr.Error()
		}
	} else {
		// 4b. Enhancement: shallow output gets template content.
		if err := machine.Transition(plan.EventParseOK); err != nil {
			return nil, err
		}
		result.States = append(result.States, machine.Current())

		if plan.IsGeneric(p) {
			plan.Enhance(p, classification.Domain)
			_ = s.audit.Log("plan.enhance", "ai", map[string]interface{}{
				"domain": classification.Domain.String(),
			})
		}

		if err := machine.Transition(plan.EventEnhanced); err != nil {
			return nil, err
		}
		result.States = append(result.States, machine.Current())
	}

	// 5. Completion: structural guarantees, regardless of provenance
	if p.Planner != nil {
		p.Planner.Subtasks = plan.SanitizeSubtasks(p.Planner.Subtasks)
	}
	p = plan.Complete(p, goal, classification.Domain)
	result.Subtasks = p.Planner.Subtasks

	// 6. Persist
	p.ID = uuid.New().String()
	generatedAt := time.Now()
	if !generatedAt.After(submittedAt) {
		generatedAt = submittedAt.Add(time.Nanosecond)
	}
	p.GeneratedAt = generatedAt

	if err := s.repo.SavePlan(p); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	if err := machine.Transition(plan.EventPersisted); err != nil {
		return nil, err
	}
	result.States = append(result.States, machine.Current())
	result.Plan = p

	if err := s.audit.Log("plan.generated", "ai", map[string]interface{}{
		"plan_id":  p.ID,
		"domain":   p.Domain.String(),
		"fallback": result.UsedFallback,
		"model":    model,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log audit event: %v\n", err)
	}

	s.recordUsage(model, usage)

	return result, nil
}

// requestPlan performs the completion call and structural decode. The caller
// treats any returned error as a fallback trigger, not a failure.
func (s *PlanningService) requestPlan(ctx context.Context, goal string, d plan.Domain, budget int, usage *ai.TokenUsage, model *string) (*plan.Plan, error) {
	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      buildPlanPrompt(goal, d),
		System:      plannerSystem,
		Temperature: 0.2,
		MaxTokens:   budget,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation call failed: %w", err)
	}

	*usage = resp.Usage
	*model = resp.Model

	if os.Getenv("BLUEPRINT_AI_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "AI raw response: %s\n", resp.Text)
	}

	p, err := plan.Parse(resp.Text)
	if err != nil {
		var malformed *plan.MalformedPlanError
		if errors.As(err, &malformed) {
			_ = s.audit.Log("plan.malformed", "ai", map[string]interface{}{
				"reason":  malformed.Reason,
				"excerpt": malformed.Excerpt,
			})
		}
		return nil, err
	}

	return p, nil
}

func (s *PlanningService) recordUsage(model string, usage ai.TokenUsage) {
	stats, err := s.repo.LoadUsage()
	if err != nil || stats == nil {
		stats = &domain.UsageStats{ProviderStats: map[string]int{}}
	}
	if stats.ProviderStats == nil {
		stats.ProviderStats = map[string]int{}
	}

	stats.TotalPlans++
	stats.LastPlanAt = time.Now()
	if model != "" {
		stats.ProviderStats[model+"-tokens"] += usage.InputTokens + usage.OutputTokens
	}

	if err := s.repo.UpdateUsage(*stats); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to update usage stats: %v\n", err)
	}
}
