package plan

// Enhance overwrites shallow plan content with the domain template. It only
// replaces structure the model already attempted: a section or key the model
// never produced is left alone, because inventing missing structure is the
// completer's job. Domains without a template (general) are a no-op.
//
// The plan is mutated in place.
func Enhance(p *Plan, domain Domain) {
	if p == nil {
		return
	}

	tpl, ok := TemplateFor(domain)
	if !ok {
		return
	}

	if p.Planner != nil && p.Planner.Requirements != nil {
		p.Planner.Requirements.CoreFeatures = tpl.CoreFeatures
	}
	if p.Designer != nil && p.Designer.Pages != nil {
		p.Designer.Pages = tpl.Pages
	}
	if p.Coder != nil && p.Coder.FileStructure != nil {
		p.Coder.FileStructure = tpl.FileStructure
	}
}
