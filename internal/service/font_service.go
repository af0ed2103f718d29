package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fadilmartias/interview-report/internal/report"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

type FontServiceInterface interface {
	Font() (*report.FontAsset, error)
}

// FontService loads and validates the cover font the first time it is asked
// for. Every later call, from any goroutine, sees the same outcome.
type FontService struct {
	path     string
	family   string
	readFile func(string) ([]byte, error)
	logger   *zap.Logger

	once  sync.Once
	asset *report.FontAsset
	err   error
}

func NewFontService(path, family string, logger *zap.Logger) *FontService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FontService{
		path:     path,
		family:   family,
		readFile: os.ReadFile,
		logger:   logger.Named("font"),
	}
}

func (s *FontService) Font() (*report.FontAsset, error) {
	s.once.Do(func() {
		s.asset, s.err = s.load()
		if s.err != nil {
			s.logger.Warn("custom font unavailable, using Helvetica", zap.String("path", s.path), zap.Error(s.err))
			return
		}
		s.logger.Info("custom font registered", zap.String("family", s.family), zap.Int("bytes", len(s.asset.Data)))
	})
	return s.asset, s.err
}

func (s *FontService) load() (*report.FontAsset, error) {
	if s.path == "" {
		return nil, &report.AssetError{Kind: report.ErrFontUnavailable}
	}
	data, err := s.readFile(s.path)
	if err != nil {
		return nil, &report.AssetError{Ref: s.path, Kind: report.ErrFontUnavailable, Cause: err}
	}
	asset := &report.FontAsset{Family: s.family, Data: data}
	if err := probeFont(asset); err != nil {
		return nil, &report.AssetError{Ref: s.path, Kind: report.ErrFontUnavailable, Cause: err}
	}
	return asset, nil
}

// probeFont embeds the font in a scratch document and writes it out, so a font
// that fpdf cannot subset is rejected here rather than while rendering a report.
func probeFont(asset *report.FontAsset) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse font: %v", r)
		}
	}()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddUTF8FontFromBytes(asset.Family, "", asset.Data)
	pdf.AddPage()
	pdf.SetFont(asset.Family, "", 12)
	pdf.Text(10, 20, "Interview Report")
	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(io.Discard)
}
