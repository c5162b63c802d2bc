package plan

import (
	"strings"
)

// runoffTriggers is the enumerated predicate table for model runoff: phrases
// that mark the point where generated subtasks stop being tasks and start
// being the model talking to itself or advertising project-management tools.
var runoffTriggers = []string{
	"<|question_end|>",
	"question 1",
	"solution",
	"trello",
	"asana",
	"microsoft project",
}

// SanitizeSubtasks truncates a subtask list at the first entry containing a
// runoff trigger. Order of the surviving entries is preserved.
func SanitizeSubtasks(subtasks []string) []string {
	clean := make([]string, 0, len(subtasks))
	for _, task := range subtasks {
		if containsRunoff(task) {
			break
		}
		clean = append(clean, task)
	}
	return clean
}

func containsRunoff(task string) bool {
	lower := strings.ToLower(task)
	for _, trigger := range runoffTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
