package plan

// Complete is the unconditional post-condition enforcer. It runs last on
// every plan regardless of provenance and guarantees the top-level structure
// the downstream agents depend on. It only adds or overwrites, never removes.
//
// The domain argument is the single source of truth: whatever the model
// claimed in the document is overwritten. An empty-but-present pages list or
// file structure counts as needing completion; a key the model emitted empty
// is as useless downstream as a missing one.
//
// Deliberately not guaranteed: subtasks, coder tasks, theme, and the
// requirement details stay absent when the model omitted them and no template
// applies. Complete is idempotent.
func Complete(p *Plan, goal string, domain Domain) *Plan {
	if p == nil {
		p = &Plan{}
	}

	if p.Goal == "" {
		p.Goal = goal
	}
	if p.ProjectType == "" {
		p.ProjectType = "web_application"
	}
	p.Domain = domain

	if p.Planner == nil {
		p.Planner = &PlannerSection{}
	}
	if p.Planner.Requirements == nil {
		p.Planner.Requirements = &Requirements{}
	}

	tpl, hasTemplate := TemplateFor(domain)

	if p.Coder == nil {
		p.Coder = &CoderSection{}
	}
	if len(p.Coder.FileStructure) == 0 && hasTemplate {
		p.Coder.FileStructure = tpl.FileStructure
	}

	if p.Designer == nil {
		p.Designer = &DesignerSection{}
	}
	if len(p.Designer.Pages) == 0 && hasTemplate {
		p.Designer.Pages = tpl.Pages
	}

	return p
}
