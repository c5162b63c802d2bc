package plan

import (
	"strings"
)

// Domain is the closed classification of a goal's application category.
// It is assigned once by the classifier and never recomputed downstream.
type Domain string

const (
	DomainMarketplace Domain = "marketplace"
	DomainDashboard   Domain = "dashboard"
	DomainSocial      Domain = "social"
	DomainGeneral     Domain = "general"
)

// Domains returns every valid domain tag in a stable order.
func Domains() []Domain {
	return []Domain{DomainMarketplace, DomainDashboard, DomainSocial, DomainGeneral}
}

func (d Domain) String() string {
	return string(d)
}

// ParseDomain normalizes a raw classifier token and checks set membership.
// Out-of-set input returns (DomainGeneral, false); the caller decides whether
// that counts as a degradation.
func ParseDomain(raw string) (Domain, bool) {
	normalized := Domain(strings.ToLower(strings.TrimSpace(raw)))
	for _, d := range Domains() {
		if normalized == d {
			return d, true
		}
	}
	return DomainGeneral, false
}
