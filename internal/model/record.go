package model

// Record is one question/score/comment triple recovered from an evaluation narrative.
type Record struct {
	Question string `json:"question"`
	Score    int    `json:"score"`
	Comment  string `json:"comment"`
}

// Scores returns the scores of records in order.
func Scores(records []Record) []int {
	scores := make([]int, len(records))
	for i, r := range records {
		scores[i] = r.Score
	}
	return scores
}
