package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	TemplateCover = "Cover"
	TemplateBody  = "Body"
)

// Frame is the rectangle flowed content may occupy. Y is measured from the top edge.
type Frame struct {
	X, Y, Width, Height float64
}

func (f Frame) Bottom() float64 {
	return f.Y + f.Height
}

// Chrome draws fixed decoration when a page starts. It reports elements it had
// to leave out and must not fail the page.
type Chrome interface {
	Draw(pdf *fpdf.Fpdf, page int) []Degradation
}

type PageTemplate struct {
	ID     string
	Frame  Frame
	Chrome Chrome
}

// Flowable is one block of the story. Draw places it at the current position
// and may continue it onto new pages.
type Flowable interface {
	Draw(l *Layout) error
}

// Layout binds the story to page templates. Pages are added either explicitly
// through SwitchTemplate/NewPage or by fpdf's automatic page break; in both
// cases the current template's chrome runs and the cursor moves to the frame origin.
type Layout struct {
	pdf       *fpdf.Fpdf
	templates map[string]PageTemplate
	current   *PageTemplate
	degraded  []Degradation
	tr        func(string) string
	logger    *zap.Logger
}

func NewLayout(pdf *fpdf.Fpdf, templates []PageTemplate, logger *zap.Logger) *Layout {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Layout{
		pdf:       pdf,
		templates: make(map[string]PageTemplate, len(templates)),
		tr:        pdf.UnicodeTranslatorFromDescriptor(""),
		logger:    logger,
	}
	for _, t := range templates {
		l.templates[t.ID] = t
	}
	pdf.SetHeaderFuncMode(l.drawChrome, true)
	return l
}

// Run starts a page on the first template and draws the story in order.
func (l *Layout) Run(first string, story []Flowable) error {
	if err := l.SwitchTemplate(first); err != nil {
		return err
	}
	for _, f := range story {
		if err := f.Draw(l); err != nil {
			return err
		}
		if l.pdf.Err() {
			return l.pdf.Error()
		}
	}
	return nil
}

// SwitchTemplate ends the current page, if any, and starts one on template id.
// Pages added afterwards by overflow use the same template.
func (l *Layout) SwitchTemplate(id string) error {
	t, ok := l.templates[id]
	if !ok {
		return fmt.Errorf("unknown page template %q", id)
	}
	l.current = &t

	pageW, pageH := l.pdf.GetPageSize()
	f := t.Frame
	l.pdf.SetMargins(f.X, f.Y, pageW-f.X-f.Width)
	l.pdf.SetAutoPageBreak(true, pageH-f.Bottom())
	l.pdf.AddPage()
	return nil
}

func (l *Layout) NewPage() {
	l.pdf.AddPage()
}

func (l *Layout) PDF() *fpdf.Fpdf {
	return l.pdf
}

func (l *Layout) Template() string {
	if l.current == nil {
		return ""
	}
	return l.current.ID
}

func (l *Layout) Frame() Frame {
	return l.current.Frame
}

// Available is the vertical space left in the current frame.
func (l *Layout) Available() float64 {
	return l.current.Frame.Bottom() - l.pdf.GetY()
}

func (l *Layout) AtFrameTop() bool {
	return l.pdf.GetY() <= l.current.Frame.Y+0.01
}

// Reserve starts a new page unless h fits in the current frame. Blocks taller
// than a whole frame are placed at the top of a fresh frame and allowed to overrun.
func (l *Layout) Reserve(h float64) {
	if h > l.Available() && !l.AtFrameTop() {
		l.NewPage()
	}
}

// Text converts s to the encoding of the built-in fonts.
func (l *Layout) Text(s string) string {
	return l.tr(s)
}

func (l *Layout) Degraded() []Degradation {
	return l.degraded
}

func (l *Layout) drawChrome() {
	if l.current == nil || l.current.Chrome == nil {
		return
	}
	page := l.pdf.PageNo()
	l.degraded = append(l.degraded, safeDraw(l.current.Chrome, l.pdf, page, l.logger)...)
}

func safeDraw(c Chrome, pdf *fpdf.Fpdf, page int, logger *zap.Logger) (degraded []Degradation) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("chrome panicked: %v", r)
			logger.Warn("page chrome skipped", zap.Int("page", page), zap.Error(err))
			if pdf.Err() {
				pdf.ClearError()
			}
			degraded = append(degraded, Degradation{Element: ElementChrome, Page: page, Err: err})
		}
	}()
	return c.Draw(pdf, page)
}

func setFill(pdf *fpdf.Fpdf, c RGB) {
	pdf.SetFillColor(c.R, c.G, c.B)
}

func setDraw(pdf *fpdf.Fpdf, c RGB) {
	pdf.SetDrawColor(c.R, c.G, c.B)
}

func setText(pdf *fpdf.Fpdf, c RGB) {
	pdf.SetTextColor(c.R, c.G, c.B)
}
