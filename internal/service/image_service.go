package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/interview-report/internal/report"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const maxImageBytes = 10 << 20

type ImageServiceInterface interface {
	Image(ctx context.Context, ref string) ([]byte, error)
}

// ImageService resolves image references for the cover page. http(s) references
// are fetched with a bounded timeout; anything else is read from disk and cached
// for the life of the process.
type ImageService struct {
	client *resty.Client
	logger *zap.Logger

	cache sync.Map
	group singleflight.Group
}

func NewImageService(timeout time.Duration, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "image/*").
		SetRetryCount(1).
		SetRetryWaitTime(100 * time.Millisecond).
		SetResponseBodyLimit(maxImageBytes).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() >= http.StatusInternalServerError
		})
	return &ImageService{
		client: client,
		logger: logger.Named("image"),
	}
}

func (s *ImageService) Image(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, &report.AssetError{Ref: ref, Kind: report.ErrImageNotFound}
	}
	if isRemote(ref) {
		return s.fetch(ctx, ref)
	}
	return s.readLocal(ref)
}

func (s *ImageService) fetch(ctx context.Context, ref string) ([]byte, error) {
	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		Get(ref)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, &report.AssetError{Ref: ref, Kind: report.ErrImageUnreachable, Cause: fmt.Errorf("image exceeds %d bytes: %w", maxImageBytes, err)}
	}
	if err != nil {
		s.logger.Warn("image fetch failed", zap.String("ref", ref), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return nil, &report.AssetError{Ref: ref, Kind: report.ErrImageUnreachable, Cause: err}
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound || resp.StatusCode() == http.StatusGone:
		return nil, &report.AssetError{Ref: ref, Kind: report.ErrImageNotFound}
	case resp.IsError():
		return nil, &report.AssetError{Ref: ref, Kind: report.ErrImageUnreachable, Cause: fmt.Errorf("status %s", resp.Status())}
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, &report.AssetError{Ref: ref, Kind: report.ErrImageNotFound, Cause: errors.New("empty body")}
	}

	s.logger.Debug("image fetched", zap.String("ref", ref), zap.Int("bytes", len(body)), zap.Duration("elapsed", time.Since(start)))
	return body, nil
}

func (s *ImageService) readLocal(path string) ([]byte, error) {
	if data, ok := s.cache.Load(path); ok {
		return data.([]byte), nil
	}

	v, err, _ := s.group.Do(path, func() (any, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		s.cache.Store(path, data)
		return data, nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &report.AssetError{Ref: path, Kind: report.ErrImageNotFound}
		}
		return nil, &report.AssetError{Ref: path, Kind: report.ErrImageUnreachable, Cause: err}
	}
	return v.([]byte), nil
}

func isRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
