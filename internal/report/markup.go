package report

import (
	"html"
	"strings"
)

const (
	tagBreak     = "<br/>"
	tagBoldOpen  = "<b>"
	tagBoldClose = "</b>"
)

var (
	markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	// Applied in order; matching is case-sensitive.
	remainderMarkers = strings.NewReplacer(
		"Overall Evaluation:", tagBoldOpen+"Overall Evaluation:"+tagBoldClose,
		"Final Recommendation:", tagBreak+tagBreak+tagBoldOpen+"Final Recommendation:"+tagBoldClose,
		"Strengths:", tagBoldOpen+"Strengths:"+tagBoldClose,
		"Weaknesses:", tagBoldOpen+"Weaknesses:"+tagBoldClose,
	)
)

// FormatRemainder turns the evaluation summary into paragraph markup: line
// breaks become <br/>, the section labels are bolded, and the final
// recommendation is pushed down by two extra breaks.
func FormatRemainder(text string) string {
	s := markupEscaper.Replace(text)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", tagBreak)
	return remainderMarkers.Replace(s)
}

// Run is a span of paragraph text in one style, or a line break.
type Run struct {
	Text  string
	Bold  bool
	Break bool
}

// ParseMarkup splits markup produced by FormatRemainder into runs.
// Only <br/>, <b> and </b> are tags; everything else is text.
func ParseMarkup(markup string) []Run {
	var runs []Run
	bold := false
	flush := func(text string) {
		if text != "" {
			runs = append(runs, Run{Text: html.UnescapeString(text), Bold: bold})
		}
	}
	for markup != "" {
		i := strings.IndexByte(markup, '<')
		if i < 0 {
			flush(markup)
			break
		}
		flush(markup[:i])
		rest := markup[i:]
		switch {
		case strings.HasPrefix(rest, tagBreak):
			runs = append(runs, Run{Break: true})
			markup = rest[len(tagBreak):]
		case strings.HasPrefix(rest, tagBoldOpen):
			bold = true
			markup = rest[len(tagBoldOpen):]
		case strings.HasPrefix(rest, tagBoldClose):
			bold = false
			markup = rest[len(tagBoldClose):]
		default:
			flush("<")
			markup = rest[1:]
		}
	}
	return runs
}
