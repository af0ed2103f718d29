// Package report lays parsed interview records out as a paginated PDF: a
// cover page drawn entirely by chrome, followed by body pages holding the
// score chart, the question table and the evaluation summary.
package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	pageSize = "A4"
	unit     = "pt"
	creator  = "Interview Report Service"
)

// Assets are the references the cover chrome resolves through the ImageProvider.
type Assets struct {
	BackgroundRef    string
	FallbackPhotoRef string
}

// Document is a finished report.
type Document struct {
	Data     []byte
	Pages    int
	Degraded []Degradation
}

type Option func(*Assembler)

// WithCompression toggles stream compression. Tests switch it off to inspect page content.
func WithCompression(on bool) Option {
	return func(a *Assembler) {
		a.compress = on
	}
}

func WithAuthor(author string) Option {
	return func(a *Assembler) {
		a.author = author
	}
}

// Assembler renders documents. It holds no per-document state and is safe
// for concurrent use as long as its providers are.
type Assembler struct {
	images   ImageProvider
	fonts    FontProvider
	assets   Assets
	logger   *zap.Logger
	compress bool
	author   string
}

func NewAssembler(images ImageProvider, fonts FontProvider, assets Assets, logger *zap.Logger, opts ...Option) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assembler{
		images:   images,
		fonts:    fonts,
		assets:   assets,
		logger:   logger,
		compress: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble renders the cover for meta and flows chart, table and the formatted
// remainder over body pages. chart and table may be nil.
func (a *Assembler) Assemble(ctx context.Context, meta model.CandidateMetadata, chart *Chart, table *Table, remainder string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &RenderError{Message: "layout panicked", Cause: fmt.Errorf("%v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Message: "request cancelled", Cause: err}
	}

	pdf := fpdf.New("P", unit, pageSize, "")
	pdf.SetCompression(a.compress)
	pdf.SetTitle("Interview Report - "+meta.Name, true)
	pdf.SetSubject("Interview "+meta.InterviewID, true)
	pdf.SetCreator(creator, true)
	if a.author != "" {
		pdf.SetAuthor(a.author, true)
	}

	pageW, pageH := pdf.GetPageSize()
	cover := NewCoverChrome(ctx, meta, a.assets.BackgroundRef, a.assets.FallbackPhotoRef, a.images, a.fonts, a.logger)
	layout := NewLayout(pdf, []PageTemplate{
		{ID: TemplateCover, Frame: Frame{X: 56, Y: 302, Width: 496, Height: 482}, Chrome: cover},
		{ID: TemplateBody, Frame: Frame{X: 40, Y: 50, Width: pageW - 80, Height: pageH - 100}, Chrome: BodyChrome{}},
	}, a.logger)

	story := BuildStory(chart, table, remainder)
	if err := layout.Run(TemplateCover, story); err != nil {
		return nil, &RenderError{Message: "lay out story", Cause: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "write document", Cause: err}
	}

	a.logger.Debug("report assembled",
		zap.String("interview_id", meta.InterviewID),
		zap.Int("pages", pdf.PageNo()),
		zap.Int("bytes", buf.Len()),
		zap.Int("degraded", len(layout.Degraded())),
	)

	return &Document{
		Data:     buf.Bytes(),
		Pages:    pdf.PageNo(),
		Degraded: layout.Degraded(),
	}, nil
}
