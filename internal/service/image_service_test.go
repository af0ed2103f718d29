package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fadilmartias/interview-report/internal/report"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_Remote(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/photo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/missing.png", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/forbidden.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/slow.png", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := NewImageService(200*time.Millisecond, nil)

	tests := []struct {
		name    string
		path    string
		want    []byte
		wantErr error
	}{
		{"ok", "/photo.png", []byte("png-bytes"), nil},
		{"not found", "/missing.png", nil, report.ErrImageNotFound},
		{"client error", "/forbidden.png", nil, report.ErrImageUnreachable},
		{"timeout", "/slow.png", nil, report.ErrImageUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := svc.Image(context.Background(), srv.URL+tt.path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestImageService_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	svc := NewImageService(time.Second, nil)
	svc.client.SetResponseBodyLimit(1024)

	data, err := svc.Image(context.Background(), srv.URL+"/huge.png")
	assert.Nil(t, data)
	assert.ErrorIs(t, err, report.ErrImageUnreachable)
	assert.ErrorIs(t, err, resty.ErrResponseBodyTooLarge)
}

func TestImageService_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewImageService(time.Second, nil).Image(context.Background(), url+"/photo.png")
	assert.ErrorIs(t, err, report.ErrImageUnreachable)
}

func TestImageService_LocalFileIsCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.png")
	require.NoError(t, os.WriteFile(path, []byte("background"), 0o600))

	svc := NewImageService(time.Second, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := svc.Image(context.Background(), path)
			assert.NoError(t, err)
			assert.Equal(t, []byte("background"), data)
		}()
	}
	wg.Wait()

	require.NoError(t, os.Remove(path))
	data, err := svc.Image(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte("background"), data)
}

func TestImageService_MissingLocalFile(t *testing.T) {
	svc := NewImageService(time.Second, nil)

	_, err := svc.Image(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, report.ErrImageNotFound)

	_, err = svc.Image(context.Background(), "")
	assert.ErrorIs(t, err, report.ErrImageNotFound)
}
