package plan

import (
	"encoding/json"
	"strings"
)

// placeholderPhrases is the enumerated predicate table for genericity
// detection. The check is intentionally over-broad: a false positive only
// triggers enhancement, which is idempotent and safe to over-apply.
var placeholderPhrases = []string{
	"to be defined based on goal",
	"modern web technologies",
	"main content",
	"content area",
	"lorem ipsum",
	"placeholder",
	"tbd",
}

// IsGeneric reports whether the plan's content is too shallow to be useful
// as-is. The plan is serialized to a single lowercase text form and scanned
// for the placeholder phrases above.
func IsGeneric(p *Plan) bool {
	if p == nil {
		return true
	}

	data, err := json.Marshal(p)
	if err != nil {
		return true
	}

	serialized := strings.ToLower(string(data))
	for _, phrase := range placeholderPhrases {
		if strings.Contains(serialized, phrase) {
			return true
		}
	}
	return false
}
