package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/felixgeelhaar/blueprint/pkg/domain"
	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

const BlueprintDir = ".blueprint"
const PlanFile = "plan.json"
const PolicyFile = "policy.yaml"
const EventsFile = "events.jsonl"
const UsageFile = "usage.json"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

var _ domain.WorkspaceRepository = (*FilesystemRepository)(nil)

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .blueprint directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	// Base directory is strictly root/.blueprint
	baseDir := filepath.Join(r.root, BlueprintDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Check for traversal and ensure it's a direct child (no nested subdirs in .blueprint for now)
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, BlueprintDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .blueprint directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, BlueprintDir))
	return err == nil
}

// SavePlan writes the plan document pretty-printed to .blueprint/plan.json.
// A plan that cannot be persisted cannot be consumed downstream, so failures
// here propagate.
func (r *FilesystemRepository) SavePlan(p *plan.Plan) error {
	if p == nil {
		return fmt.Errorf("plan is nil")
	}

	path, err := r.ResolvePath(PlanFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

// LoadPlan reads plan.json and checks it against the consumer contract
// (goal, planner.subtasks, coder) before decoding.
func (r *FilesystemRepository) LoadPlan() (*plan.Plan, error) {
	retryer := retry.New[*plan.Plan](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*plan.Plan, error) {
		path, err := r.ResolvePath(PlanFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan file: %w", err)
		}

		if err := plan.ValidateDocument(data); err != nil {
			return nil, err
		}

		var p plan.Plan
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
		}

		return &p, nil
	})
}

func (r *FilesystemRepository) UpdateUsage(stats domain.UsageStats) error {
	path, err := r.ResolvePath(UsageFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal usage stats: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadUsage() (*domain.UsageStats, error) {
	path, err := r.ResolvePath(UsageFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.UsageStats{ProviderStats: map[string]int{}}, nil
		}
		return nil, fmt.Errorf("failed to read usage file: %w", err)
	}

	var stats domain.UsageStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal usage stats: %w", err)
	}

	return &stats, nil
}
