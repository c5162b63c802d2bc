package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/blueprint/pkg/domain/ai"
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

// ClassificationResult carries the assigned domain plus the reason the
// classifier fell back to general, when it did. Degraded classification is
// reported, never raised: a misrouted plan is still a plan.
type ClassificationResult struct {
	Domain   plan.Domain
	Degraded bool
	Reason   string
}

const classifierSystem = "You are a project classifier. You answer with exactly one word from the allowed set and nothing else."

// ClassifyGoal asks the provider to place the goal into one of the closed
// domain categories. Any failure mode (provider error, out-of-set token,
// empty response) degrades to general.
func ClassifyGoal(ctx context.Context, provider ai.Provider, goal string) ClassificationResult {
	prompt := fmt.Sprintf(`Classify this project goal into exactly one category.

Allowed categories: marketplace, dashboard, social, general

Rules:
- "marketplace": buying, selling, listings, vendors, e-commerce
- "dashboard": analytics, admin panels, monitoring, data visualization
- "social": profiles, feeds, posts, messaging, communities
- "general": everything else

Answer with the single category word only.

Goal: %s`, goal)

	resp, err := provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		System:      classifierSystem,
		Temperature: 0,
		MaxTokens:   16,
	})
	if err != nil {
		return ClassificationResult{
			Domain:   plan.DomainGeneral,
			Degraded: true,
			Reason:   fmt.Sprintf("classifier call failed: %v", err),
		}
	}

	token := firstToken(resp.Text)
	domain, ok := plan.ParseDomain(token)
	if !ok {
		return ClassificationResult{
			Domain:   plan.DomainGeneral,
			Degraded: true,
			Reason:   fmt.Sprintf("classifier answered outside the category set: %q", token),
		}
	}

	return ClassificationResult{Domain: domain}
}

// firstToken isolates the first word of the model answer. Some models pad the
// category with punctuation or a trailing explanation despite the prompt.
func firstToken(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,:;\"'`")
}
