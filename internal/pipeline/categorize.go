package pipeline

import (
	"sort"
	"strings"
)

// CategoryOther is assigned when the issues text matches no keyword group.
const CategoryOther = "other"

// issueKeywordGroups maps keyword groups to broader category labels. Matching
// is plain substring containment over the lowercased issues text; a text can
// hit several groups. Substring false positives are a known limitation kept
// as-is so historical classification output stays stable.
var issueKeywordGroups = []struct {
	keywords []string
	category string
}{
	{[]string{"healthcare", "medical"}, "healthcare"},
	{[]string{"school", "student", "educator"}, "education"},
	{[]string{"sports"}, "sports"},
	{[]string{"facilities", "bathroom"}, "facilities"},
	{[]string{"religious"}, "religious_exemption"},
	{[]string{"curriculum", "outing", "don't say"}, "schools_speech"},
	{[]string{"id", "definition of sex", "re-definition"}, "identity_documents"},
	{[]string{"drag", "expression"}, "expression"},
	{[]string{"accommodation"}, "public_accommodations"},
}

// CategorizeIssues maps the free-text issue tags of a bill to the set of
// matched category labels, sorted for deterministic serialization. Missing
// or unmatched text categorizes as "other"; the result is never empty.
func CategorizeIssues(issues *string) []string {
	if issues == nil {
		return []string{CategoryOther}
	}

	lower := strings.ToLower(*issues)
	matched := map[string]struct{}{}
	for _, group := range issueKeywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				matched[group.category] = struct{}{}
				break
			}
		}
	}

	if len(matched) == 0 {
		return []string{CategoryOther}
	}
	categories := make([]string, 0, len(matched))
	for c := range matched {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
