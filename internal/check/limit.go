package check

// limitIssues applies the per-linter and same-message caps and returns how
// many issues were dropped. Issues must already be sorted.
func limitIssues(issues []Issue, maxPerLinter, maxSame int) ([]Issue, int) {
	original := len(issues)

	if maxPerLinter > 0 {
		perLinter := make(map[string]int)
		filtered := issues[:0:0]
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < maxPerLinter {
				filtered = append(filtered, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = filtered
	}

	if maxSame > 0 {
		issues = deduplicateSameIssues(issues, maxSame)
	}

	return issues, original - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	counts := make(map[string]int)
	var filtered []Issue
	for _, issue := range issues {
		if counts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			counts[issue.Text]++
		}
	}
	return filtered
}
