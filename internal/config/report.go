package config

import (
	"log"
	"os"
	"sync"
	"time"
)

const (
	defaultTemplatePath = "template.png"
	defaultFontPath     = "IBMPlexSansDevanagari-Regular.ttf"
	defaultFontName     = "IBMPlexSansDevanagari-Regular"
	defaultPhotoURL     = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
	defaultPhotoTimeout = 5 * time.Second
)

// ReportConfig points at the cover-page assets. Missing assets are not fatal;
// the cover page degrades element by element.
type ReportConfig struct {
	TemplatePath    string
	FontPath        string
	FontName        string
	DefaultPhotoURL string
	PhotoTimeout    time.Duration
}

var (
	reportConfig *ReportConfig
	reportOnce   sync.Once
)

func LoadReportConfig() *ReportConfig {
	reportOnce.Do(func() {
		timeout := defaultPhotoTimeout
		if raw := os.Getenv("REPORT_PHOTO_TIMEOUT"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil || d <= 0 {
				log.Printf("Warning: invalid REPORT_PHOTO_TIMEOUT %q, defaulting to %s", raw, defaultPhotoTimeout)
			} else {
				timeout = d
			}
		}
		reportConfig = &ReportConfig{
			TemplatePath:    envOr("REPORT_TEMPLATE_PATH", defaultTemplatePath),
			FontPath:        envOr("REPORT_FONT_PATH", defaultFontPath),
			FontName:        envOr("REPORT_FONT_NAME", defaultFontName),
			DefaultPhotoURL: envOr("REPORT_DEFAULT_PHOTO_URL", defaultPhotoURL),
			PhotoTimeout:    timeout,
		}
	})
	return reportConfig
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
