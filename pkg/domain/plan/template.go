package plan

import (
	"fmt"
)

// DomainTemplate is the static enhancement content for a domain. Templates are
// read-only; TemplateFor hands out copies so callers can never mutate the
// catalog.
type DomainTemplate struct {
	CoreFeatures  []string
	Pages         []Page
	FileStructure map[string]string
}

// catalog maps every domain except general to its template. Initialized once
// at package load and never written again.
var catalog = map[Domain]DomainTemplate{
	DomainMarketplace: {
		CoreFeatures: []string{
			"Product listings with images and pricing",
			"Search and category filtering",
			"Shopping cart",
			"Checkout with payment integration",
			"Seller profiles and ratings",
		},
		Pages: []Page{
			{Name: "Home", Components: []string{"Hero banner", "Featured products", "Category navigation"}},
			{Name: "Product Listing", Components: []string{"Filter sidebar", "Product grid", "Pagination"}},
			{Name: "Product Detail", Components: []string{"Image gallery", "Product info", "Add to cart", "Reviews"}},
			{Name: "Cart", Components: []string{"Cart items", "Order summary", "Checkout button"}},
			{Name: "Checkout", Components: []string{"Shipping form", "Payment form", "Order review"}},
		},
		FileStructure: map[string]string{
			"src/App.js":                    "Application shell and routing",
			"src/components/ProductCard.js": "Product summary card for listings",
			"src/components/Cart.js":        "Cart contents and totals",
			"src/pages/Checkout.js":         "Checkout flow",
			"src/api/products.js":           "Product catalog API client",
			"src/api/orders.js":             "Order placement API client",
		},
	},
	DomainDashboard: {
		CoreFeatures: []string{
			"KPI overview cards",
			"Interactive charts with date ranges",
			"Data filtering and drill-down",
			"CSV export",
			"Role-based access",
		},
		Pages: []Page{
			{Name: "Overview", Components: []string{"KPI cards", "Trend chart", "Activity feed"}},
			{Name: "Reports", Components: []string{"Filter bar", "Data table", "Export button"}},
			{Name: "Settings", Components: []string{"Profile form", "Team management"}},
		},
		FileStructure: map[string]string{
			"src/App.js":                   "Application shell and routing",
			"src/components/KpiCard.js":    "Single KPI metric card",
			"src/components/ChartPanel.js": "Chart wrapper with range picker",
			"src/components/DataTable.js":  "Sortable, filterable data table",
			"src/api/metrics.js":           "Metrics API client",
		},
	},
	DomainSocial: {
		CoreFeatures: []string{
			"User profiles with avatars",
			"Post feed with infinite scroll",
			"Comments and reactions",
			"Follow relationships",
			"Notifications",
		},
		Pages: []Page{
			{Name: "Feed", Components: []string{"Post composer", "Post list", "Trending sidebar"}},
			{Name: "Profile", Components: []string{"Avatar header", "Post history", "Follow button"}},
			{Name: "Notifications", Components: []string{"Notification list"}},
		},
		FileStructure: map[string]string{
			"src/App.js":                      "Application shell and routing",
			"src/components/PostCard.js":      "Single post with reactions",
			"src/components/CommentThread.js": "Nested comment display",
			"src/pages/Profile.js":            "User profile page",
			"src/api/posts.js":                "Post and feed API client",
		},
	},
}

// init asserts catalog exhaustiveness: every domain except general must carry
// a template, and no unknown domain may sneak in.
func init() {
	for _, d := range Domains() {
		if d == DomainGeneral {
			continue
		}
		if _, ok := catalog[d]; !ok {
			panic(fmt.Sprintf("template catalog is missing domain %q", d))
		}
	}
	for d := range catalog {
		if _, ok := ParseDomain(string(d)); !ok {
			panic(fmt.Sprintf("template catalog contains unknown domain %q", d))
		}
	}
}

// TemplateFor returns a copy of the template for the given domain, or false
// when the domain carries no template (general).
func TemplateFor(d Domain) (*DomainTemplate, bool) {
	tpl, ok := catalog[d]
	if !ok {
		return nil, false
	}

	out := DomainTemplate{
		CoreFeatures:  append([]string(nil), tpl.CoreFeatures...),
		Pages:         make([]Page, 0, len(tpl.Pages)),
		FileStructure: make(map[string]string, len(tpl.FileStructure)),
	}
	for _, p := range tpl.Pages {
		out.Pages = append(out.Pages, Page{
			Name:       p.Name,
			Components: append([]string(nil), p.Components...),
		})
	}
	for path, desc := range tpl.FileStructure {
		out.FileStructure[path] = desc
	}
	return &out, true
}
