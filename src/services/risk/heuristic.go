package risk

// HeuristicScore is the cheap local approximation used only to order the
// counselor list before any detail view is opened. The authoritative score
// comes from the risk API, fetched lazily one student at a time.
func HeuristicScore(gpa, attendance float64) int {
	score := 0
	if gpa < 5 {
		score += 10
	}
	if attendance < 75 {
		score += 10
	}
	return score
}
