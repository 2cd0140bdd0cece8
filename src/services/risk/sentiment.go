package risk

import (
	"strings"

	"Backend-Sentinel/src/models"
)

// negativeWords is the fixed keyword set the sentiment signal counts.
// The risk model was trained against scores produced by exactly this list;
// changing it shifts every score, so treat it as frozen.
var negativeWords = []string{
	"bad", "fail", "hard", "quit", "stress",
	"depressed", "hate", "worry", "trouble", "struggle",
}

// AnalyzeSentiment counts negative keywords across the student's posts:
// one point per matching keyword per post, case-insensitive substring match.
// A post hitting two distinct keywords contributes -2. No posts → 0.
func AnalyzeSentiment(posts []models.ForumPost) int {
	score := 0
	for _, p := range posts {
		text := strings.ToLower(p.Content)
		for _, w := range negativeWords {
			if strings.Contains(text, w) {
				score--
			}
		}
	}
	return score
}
