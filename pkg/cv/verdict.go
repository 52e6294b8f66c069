package cv

import (
	"fmt"
	"strings"
)

const judgeSystemPrompt = "match job skills"

// InterpretVerdict turns a free-text completion into a match verdict:
// true iff the lowercased, trimmed reply contains "yes" anywhere.
func InterpretVerdict(reply string) bool {
	return strings.Contains(strings.TrimSpace(strings.ToLower(reply)), "yes")
}

func buildJudgePrompt(skills []string, cvText string, thresholdPercent int) string {
	return fmt.Sprintf(
		"Job required skills: %s\n\nCandidate CV:\n<<<\n%s\n>>>\n\nDoes the candidate have at least %d%% of the required skills? Answer yes or no, then give a one-line reason.",
		strings.Join(skills, ", "),
		cvText,
		thresholdPercent,
	)
}
