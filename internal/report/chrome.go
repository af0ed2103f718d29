package report

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"

	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Cover geometry, measured from the top-left corner of an A4 page.
const (
	coverTextX = 43

	nameSize, nameBaseline         = 14, 137
	positionSize, positionBaseline = 11, 157
	dateSize, dateBaseline         = 10, 175
	idSize, idBaseline             = 10, 190

	photoX, photoY = 465, 108
	photoW, photoH = 84, 91
	photoRadius    = 5

	footerSize   = 9
	footerInsetX = 40
	footerInsetY = 30
)

// CoverChrome draws the background template, the candidate details and the
// candidate photo. Every element is optional and drops out on its own.
type CoverChrome struct {
	ctx           context.Context
	meta          model.CandidateMetadata
	backgroundRef string
	fallbackPhoto string
	images        ImageProvider
	fonts         FontProvider
	logger        *zap.Logger

	family string // registered custom family, "" for the built-in fonts
	loaded bool
}

func NewCoverChrome(ctx context.Context, meta model.CandidateMetadata, backgroundRef, fallbackPhoto string, images ImageProvider, fonts FontProvider, logger *zap.Logger) *CoverChrome {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoverChrome{
		ctx:           ctx,
		meta:          meta,
		backgroundRef: backgroundRef,
		fallbackPhoto: fallbackPhoto,
		images:        images,
		fonts:         fonts,
		logger:        logger,
	}
}

func (c *CoverChrome) Draw(pdf *fpdf.Fpdf, page int) []Degradation {
	var degraded []Degradation
	degrade := func(element string, err error) {
		c.logger.Warn("cover element omitted",
			zap.String("element", element),
			zap.Int("page", page),
			zap.String("interview_id", c.meta.InterviewID),
			zap.Error(err),
		)
		degraded = append(degraded, Degradation{Element: element, Page: page, Err: err})
	}

	if err := c.drawBackground(pdf); err != nil {
		degrade(ElementBackground, err)
	}
	if err := c.loadFont(pdf); err != nil {
		degrade(ElementFont, err)
	}
	c.drawDetails(pdf)
	if err := c.drawPhoto(pdf); err != nil {
		degrade(ElementPhoto, err)
	}
	return degraded
}

func (c *CoverChrome) drawBackground(pdf *fpdf.Fpdf) error {
	if c.images == nil || c.backgroundRef == "" {
		return &AssetError{Ref: c.backgroundRef, Kind: ErrImageNotFound}
	}
	data, err := c.images.Image(c.ctx, c.backgroundRef)
	if err != nil {
		return err
	}
	name, err := registerImage(pdf, "cover-background", data)
	if err != nil {
		return &AssetError{Ref: c.backgroundRef, Kind: ErrImageNotFound, Cause: err}
	}
	w, h := pdf.GetPageSize()
	pdf.ImageOptions(name, 0, 0, w, h, false, fpdf.ImageOptions{}, 0, "")
	return clearErr(pdf)
}

// loadFont embeds the custom font into this document once. On failure the
// cover falls back to Helvetica.
func (c *CoverChrome) loadFont(pdf *fpdf.Fpdf) error {
	if c.loaded {
		return nil
	}
	c.loaded = true
	if c.fonts == nil {
		return ErrFontUnavailable
	}
	font, err := c.fonts.Font()
	if err != nil {
		return err
	}
	if err := addFont(pdf, font); err != nil {
		return &AssetError{Ref: font.Family, Kind: ErrFontUnavailable, Cause: err}
	}
	c.family = font.Family
	return nil
}

func addFont(pdf *fpdf.Fpdf, font *FontAsset) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pdf.ClearError()
			err = fmt.Errorf("parse font: %v", r)
		}
	}()
	pdf.AddUTF8FontFromBytes(font.Family, "", font.Data)
	if err := clearErr(pdf); err != nil {
		return err
	}
	// fpdf can skip a font it fails to parse without flagging an error.
	pdf.SetFont(font.Family, "", nameSize)
	return clearErr(pdf)
}

func (c *CoverChrome) drawDetails(pdf *fpdf.Fpdf) {
	setText(pdf, white)
	tr := func(s string) string { return s }
	if c.family == "" {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	lines := []struct {
		text     string
		size     float64
		baseline float64
		bold     bool
	}{
		{c.meta.Name, nameSize, nameBaseline, true},
		{c.meta.Position, positionSize, positionBaseline, false},
		{c.meta.Date, dateSize, dateBaseline, false},
		{c.meta.InterviewID, idSize, idBaseline, false},
	}
	for _, line := range lines {
		if c.family != "" {
			pdf.SetFont(c.family, "", line.size)
		} else if line.bold {
			pdf.SetFont("Helvetica", "B", line.size)
		} else {
			pdf.SetFont("Helvetica", "", line.size)
		}
		pdf.Text(coverTextX, line.baseline, tr(line.text))
	}
}

// drawPhoto tries the candidate's own photo first and then the fallback.
func (c *CoverChrome) drawPhoto(pdf *fpdf.Fpdf) error {
	if c.images == nil {
		return &AssetError{Kind: ErrImageUnreachable}
	}

	var lastErr error
	for i, ref := range []string{c.meta.PhotoURL, c.fallbackPhoto} {
		if ref == "" {
			continue
		}
		data, err := c.images.Image(c.ctx, ref)
		if err != nil {
			c.logger.Debug("photo candidate rejected", zap.String("ref", ref), zap.Error(err))
			lastErr = err
			continue
		}
		name, err := registerImage(pdf, "cover-photo-"+strconv.Itoa(i), data)
		if err != nil {
			lastErr = &AssetError{Ref: ref, Kind: ErrImageNotFound, Cause: err}
			continue
		}

		pdf.ClipRoundedRect(photoX, photoY, photoW, photoH, photoRadius, false)
		pdf.ImageOptions(name, photoX, photoY, photoW, photoH, false, fpdf.ImageOptions{}, 0, "")
		pdf.ClipEnd()
		return clearErr(pdf)
	}
	if lastErr == nil {
		lastErr = &AssetError{Kind: ErrImageNotFound}
	}
	return lastErr
}

// registerImage decodes the header of data and registers it under name.
func registerImage(pdf *fpdf.Fpdf, name string, data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	var imageType string
	switch format {
	case "jpeg":
		imageType = "JPG"
	case "png":
		imageType = "PNG"
	case "gif":
		imageType = "GIF"
	default:
		return "", fmt.Errorf("unsupported image format %q", format)
	}

	info := pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if err := clearErr(pdf); err != nil {
		return "", err
	}
	if info == nil {
		return "", fmt.Errorf("image %s was not registered", name)
	}
	return name, nil
}

// clearErr returns the document's pending error, if any, and resets it so
// drawing can continue.
func clearErr(pdf *fpdf.Fpdf) error {
	if !pdf.Err() {
		return nil
	}
	err := pdf.Error()
	pdf.ClearError()
	return err
}

// BodyChrome draws the right-aligned page footer.
type BodyChrome struct{}

func (BodyChrome) Draw(pdf *fpdf.Fpdf, page int) []Degradation {
	w, h := pdf.GetPageSize()
	label := "Page " + strconv.Itoa(page)
	pdf.SetFont("Helvetica", "", footerSize)
	setText(pdf, black)
	pdf.Text(w-footerInsetX-pdf.GetStringWidth(label), h-footerInsetY, label)
	return nil
}
