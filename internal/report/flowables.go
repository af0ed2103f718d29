package report

const (
	headingSize       = 12
	headingLeading    = 14.4
	headingSpaceAfter = 6

	bodySize    = 10
	bodyLeading = 14
)

// NextTemplate switches the flow to another page template on a new page.
type NextTemplate struct {
	ID string
}

func (n NextTemplate) Draw(l *Layout) error {
	return l.SwitchTemplate(n.ID)
}

type Spacer struct {
	Height float64
}

// Draw moves the cursor down, stopping at the frame bottom instead of breaking the page.
func (s Spacer) Draw(l *Layout) error {
	pdf := l.PDF()
	y := pdf.GetY() + s.Height
	if bottom := l.Frame().Bottom(); y > bottom {
		y = bottom
	}
	pdf.SetY(y)
	return nil
}

type Heading struct {
	Text string
}

func (h Heading) Draw(l *Layout) error {
	l.Reserve(headingLeading)
	pdf := l.PDF()
	pdf.SetFont("Helvetica", "B", headingSize)
	setText(pdf, navy)
	pdf.SetX(l.Frame().X)
	pdf.CellFormat(l.Frame().Width, headingLeading, l.Text(h.Text), "", 1, "L", false, 0, "")
	pdf.SetY(pdf.GetY() + headingSpaceAfter)
	return nil
}

// Paragraph flows runs within the frame, wrapping at word boundaries and
// continuing on new pages as needed.
type Paragraph struct {
	Runs []Run
}

func (p Paragraph) Draw(l *Layout) error {
	if len(p.Runs) == 0 {
		return nil
	}
	l.Reserve(bodyLeading)
	pdf := l.PDF()
	pdf.SetX(l.Frame().X)
	setText(pdf, black)
	for _, r := range p.Runs {
		if r.Break {
			pdf.Ln(bodyLeading)
			continue
		}
		pdf.SetFont("Helvetica", styleFor(r), bodySize)
		pdf.Write(bodyLeading, l.Text(r.Text))
	}
	pdf.Ln(bodyLeading)
	return nil
}

func styleFor(r Run) string {
	if r.Bold {
		return "B"
	}
	return ""
}

// BuildStory lays out the body content in reading order: the score chart, the
// question table and the evaluation summary, each only when present.
func BuildStory(chart *Chart, table *Table, remainder string) []Flowable {
	story := []Flowable{NextTemplate{ID: TemplateBody}}
	if chart != nil {
		story = append(story,
			Heading{Text: "Score Overview"},
			chartFlowable{chart: chart},
			Spacer{Height: 15},
		)
	}
	if table != nil {
		story = append(story,
			Heading{Text: "Detailed Question Analysis"},
			Spacer{Height: 5},
			tableFlowable{table: table},
			Spacer{Height: 20},
		)
	}
	if remainder != "" {
		story = append(story, Paragraph{Runs: ParseMarkup(FormatRemainder(remainder))})
	}
	return story
}
