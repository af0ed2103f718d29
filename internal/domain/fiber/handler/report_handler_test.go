package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadilmartias/interview-report/internal/dto"
	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/fadilmartias/interview-report/internal/parser"
	"github.com/fadilmartias/interview-report/internal/report"
	"github.com/fadilmartias/interview-report/internal/response"
	"github.com/fadilmartias/interview-report/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	generateErr error
	logErr      error
	generated   *dto.ReportRequestDTO
	page        int
	pageSize    int
}

func (s *stubUsecase) Generate(_ context.Context, req *dto.ReportRequestDTO) (*usecase.ReportResult, error) {
	s.generated = req
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &usecase.ReportResult{
		Filename: "Report_" + *req.InterviewID + ".pdf",
		Document: &report.Document{Data: []byte("%PDF-1.3 test"), Pages: 2},
	}, nil
}

func (s *stubUsecase) GetLog(_ context.Context, id uuid.UUID) (*model.ReportLog, error) {
	if s.logErr != nil {
		return nil, s.logErr
	}
	return &model.ReportLog{ID: id, InterviewID: "INT-1"}, nil
}

func (s *stubUsecase) ListLogs(_ context.Context, page, pageSize int) ([]model.ReportLog, *response.Pagination, error) {
	s.page, s.pageSize = page, pageSize
	if s.logErr != nil {
		return nil, nil, s.logErr
	}
	return []model.ReportLog{{InterviewID: "INT-1"}}, response.NewPagination(page, pageSize, 1), nil
}

func (s *stubUsecase) SimilarLogs(_ context.Context, _ uuid.UUID, _ int) ([]model.ReportLog, error) {
	if s.logErr != nil {
		return nil, s.logErr
	}
	return []model.ReportLog{}, nil
}

func newTestApp(uc usecase.ReportUsecaseInterface) *fiber.App {
	app := fiber.New()
	NewReportHandler(uc, nil).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	msg, _ := body["error"].(string)
	return msg
}

const fullBody = `{"candidate_name":"Jane","candidate_position":"Engineer","date":"2024-05-01","interview_id":"INT-42","ai_overview":"Overall Evaluation: ok"}`

func TestGenerate_Success(t *testing.T) {
	uc := &stubUsecase{}
	resp := postJSON(t, newTestApp(uc), fullBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Report_INT-42.pdf"`)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 test", string(data))
	assert.Equal(t, "Overall Evaluation: ok", *uc.generated.AIOverview)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"no body", ``, "No JSON data provided"},
		{"missing field", `{"candidate_name":"Jane","candidate_position":"Engineer","date":"2024-05-01","ai_overview":"x"}`, "Missing field: interview_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUsecase{}
			resp := postJSON(t, newTestApp(uc), tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.message, decodeError(t, resp))
			assert.Nil(t, uc.generated)
		})
	}
}

func TestGenerate_InternalFailure(t *testing.T) {
	uc := &stubUsecase{generateErr: &parser.ParseError{Message: "invalid score", Token: "1e99"}}
	resp := postJSON(t, newTestApp(uc), fullBody)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, `parse error: invalid score "1e99"`, decodeError(t, resp))
}

func TestListReports(t *testing.T) {
	uc := &stubUsecase{}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports?page=2&page_size=500", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, uc.page)
	assert.Equal(t, maxPageSize, uc.pageSize)
}

func TestReportLogErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"disabled", "/reports", usecase.ErrReportLogDisabled, http.StatusServiceUnavailable},
		{"not found", "/reports/" + uuid.NewString(), usecase.ErrReportLogNotFound, http.StatusNotFound},
		{"similar disabled", "/reports/" + uuid.NewString() + "/similar", usecase.ErrReportLogDisabled, http.StatusServiceUnavailable},
		{"bad id", "/reports/not-a-uuid", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubUsecase{logErr: tt.err})
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
