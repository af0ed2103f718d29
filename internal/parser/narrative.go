// Package parser recovers question/score/comment records and the evaluation
// summary from an evaluator's free-form narrative.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fadilmartias/interview-report/internal/model"
)

const (
	MinScore = 0
	MaxScore = 10
)

var (
	// blockHeadPattern matches everything of a block up to the start of its comment.
	blockHeadPattern = regexp.MustCompile(`(?is)Question:\s*(.+?)\s*\n\s*Score:\s*(\d+)\s*\n\s*Comment:\s*`)

	// commentEndPattern marks where a comment stops: the next question, a
	// numbered-list line, or the evaluation summary.
	commentEndPattern = regexp.MustCompile(`(?i)\n\s*(?:Question:|[0-9]+\.|Overall Evaluation:)`)

	summaryPattern = regexp.MustCompile(`(?i)(2\.\s*Overall Evaluation:|Overall Evaluation:)`)
)

// Parse extracts the ordered records and the evaluation summary remainder from raw.
// Text that matches no block is ignored. Scores are clamped into [MinScore, MaxScore].
func Parse(raw string) ([]model.Record, string, error) {
	records, err := ParseRecords(raw)
	if err != nil {
		return nil, "", err
	}
	return records, Remainder(raw), nil
}

// ParseRecords returns every Question/Score/Comment block of raw in source order.
func ParseRecords(raw string) ([]model.Record, error) {
	records := []model.Record{}

	pos := 0
	for pos < len(raw) {
		loc := blockHeadPattern.FindStringSubmatchIndex(raw[pos:])
		if loc == nil {
			break
		}
		question := raw[pos+loc[2] : pos+loc[3]]
		scoreToken := raw[pos+loc[4] : pos+loc[5]]
		commentStart := pos + loc[1]

		// A comment needs at least one character; a bare trailing "Comment:" is not a block.
		if commentStart >= len(raw) && strings.HasSuffix(strings.ToLower(raw), "comment:") {
			break
		}

		score, err := strconv.Atoi(scoreToken)
		if err != nil {
			return nil, &ParseError{Message: "invalid score", Token: scoreToken, Cause: err}
		}

		commentEnd := len(raw)
		if commentStart < len(raw) {
			if end := commentEndPattern.FindStringIndex(raw[commentStart+1:]); end != nil {
				commentEnd = commentStart + 1 + end[0]
			}
		}

		records = append(records, model.Record{
			Question: cleanQuestion(question),
			Score:    ClampScore(score),
			Comment:  cleanComment(raw[commentStart:commentEnd]),
		})
		pos = commentEnd
	}

	return records, nil
}

// Remainder returns raw from the first evaluation summary marker onward, trimmed,
// or "" when raw has no marker.
func Remainder(raw string) string {
	loc := summaryPattern.FindStringIndex(raw)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(raw[loc[0]:])
}

func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func cleanQuestion(q string) string {
	q = strings.TrimSpace(q)
	q = strings.TrimPrefix(q, "Your ")
	return strings.TrimSpace(q)
}

func cleanComment(c string) string {
	c = strings.TrimSpace(c)
	c = strings.ReplaceAll(c, "\r\n", " ")
	return strings.ReplaceAll(c, "\n", " ")
}
