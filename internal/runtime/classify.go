package runtime

import (
	"strings"

	"github.com/resultflow/careflow/pkg/domain"
)

// replyRule pairs a predicate over the lowercased input with a reply
// builder. Rules are evaluated in order, first match wins. This is a
// deliberately simple static table, not an inference engine.
type replyRule struct {
	matches func(text string) bool
	reply   func(category domain.Category) string
}

var replyRules = []replyRule{
	{
		matches: func(text string) bool {
			return strings.Contains(text, "how") || strings.Contains(text, "work")
		},
		reply: func(category domain.Category) string {
			if category == domain.CategorySkin {
				return mechanismSkin
			}
			return mechanismHair
		},
	},
}

// classifyReply picks the assistant reply for free-text input.
// Matching is case-insensitive substring matching; unmatched input gets the
// generic help menu.
func classifyReply(text string, category domain.Category) string {
	lower := strings.ToLower(text)
	for _, rule := range replyRules {
		if rule.matches(lower) {
			return rule.reply(category)
		}
	}
	return helpMenu
}
