package plan

import (
	"time"
)

// Plan is the structured planning artifact handed to downstream coder and
// designer agents. Nil pointers, nil slices, and nil maps mean the model never
// produced the key; decoded `{}` and `[]` values stay non-nil. The enhancer
// and completer rely on that distinction.
type Plan struct {
	ID          string           `json:"id,omitempty"`
	Goal        string           `json:"goal"`
	ProjectType string           `json:"project_type"`
	Domain      Domain           `json:"domain"`
	Planner     *PlannerSection  `json:"planner"`
	Coder       *CoderSection    `json:"coder"`
	Designer    *DesignerSection `json:"designer"`
	GeneratedAt time.Time        `json:"generated_at,omitzero"`
}

// PlannerSection holds the ordered subtasks and the project requirements.
type PlannerSection struct {
	Subtasks     []string      `json:"subtasks"`
	Requirements *Requirements `json:"requirements"`
}

type Requirements struct {
	CoreFeatures []string `json:"core_features"`
	TechStack    string   `json:"tech_stack"`
	Timeline     string   `json:"timeline"`
}

// CoderSection describes the implementation work. FileStructure maps a
// relative file path to a one-line description.
type CoderSection struct {
	Tasks          []string               `json:"tasks"`
	TechnicalSpecs map[string]interface{} `json:"technical_specs"`
	FileStructure  map[string]string      `json:"file_structure"`
}

// DesignerSection describes the UI work.
type DesignerSection struct {
	Theme        string        `json:"theme"`
	Pages        []Page        `json:"pages"`
	DesignSystem *DesignSystem `json:"design_system"`
}

type Page struct {
	Name       string   `json:"name"`
	Components []string `json:"components"`
}

type DesignSystem struct {
	Colors     map[string]string `json:"colors"`
	Typography map[string]string `json:"typography"`
}
