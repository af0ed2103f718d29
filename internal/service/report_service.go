package service

import (
	"github.com/fadilmartias/interview-report/internal/config"
	"github.com/fadilmartias/interview-report/internal/report"
	"go.uber.org/zap"
)

// NewReportAssembler wires the configured cover assets into an assembler.
func NewReportAssembler(cfg *config.ReportConfig, logger *zap.Logger, opts ...report.Option) *report.Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	images := NewImageService(cfg.PhotoTimeout, logger)
	fonts := NewFontService(cfg.FontPath, cfg.FontName, logger)
	return report.NewAssembler(images, fonts, report.Assets{
		BackgroundRef:    cfg.TemplatePath,
		FallbackPhotoRef: cfg.DefaultPhotoURL,
	}, logger.Named("report"), opts...)
}
