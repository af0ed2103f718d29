package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/interview-report/internal/dto"
	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/fadilmartias/interview-report/internal/parser"
	"github.com/fadilmartias/interview-report/internal/report"
	"github.com/fadilmartias/interview-report/internal/response"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MaxSimilar = 20

var (
	ErrReportLogDisabled = errors.New("report log is not configured")
	ErrReportLogNotFound = errors.New("report log not found")
)

type ReportUsecaseInterface interface {
	Generate(ctx context.Context, req *dto.ReportRequestDTO) (*ReportResult, error)
	GetLog(ctx context.Context, id uuid.UUID) (*model.ReportLog, error)
	ListLogs(ctx context.Context, page, pageSize int) ([]model.ReportLog, *response.Pagination, error)
	SimilarLogs(ctx context.Context, id uuid.UUID, topK int) ([]model.ReportLog, error)
}

type DocumentAssembler interface {
	Assemble(ctx context.Context, meta model.CandidateMetadata, chart *report.Chart, table *report.Table, remainder string) (*report.Document, error)
}

// ReportLogStore persists generation attempts. It is optional.
type ReportLogStore interface {
	CreateLog(ctx context.Context, log *model.ReportLog) error
	FindLogByID(ctx context.Context, id uuid.UUID) (*model.ReportLog, error)
	ListLogs(ctx context.Context, limit, offset int) ([]model.ReportLog, int64, error)
	SearchSimilar(ctx context.Context, target *model.ReportLog, topK int) ([]model.ReportLog, error)
}

type ReportResult struct {
	Filename    string
	Document    *report.Document
	RecordCount int
}

type ReportUsecase struct {
	assembler DocumentAssembler
	logs      ReportLogStore
	logger    *zap.Logger
}

// NewReportUsecase builds the usecase. logs may be nil, in which case nothing
// is recorded and the log queries return ErrReportLogDisabled.
func NewReportUsecase(assembler DocumentAssembler, logs ReportLogStore, logger *zap.Logger) *ReportUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUsecase{assembler: assembler, logs: logs, logger: logger}
}

// Generate parses the narrative and renders the full report. It yields either
// a complete document or an error, never a partial document.
func (uc *ReportUsecase) Generate(ctx context.Context, req *dto.ReportRequestDTO) (*ReportResult, error) {
	start := time.Now()
	meta := req.Metadata()
	entry := &model.ReportLog{
		InterviewID:   meta.InterviewID,
		CandidateName: meta.Name,
		Position:      meta.Position,
	}

	records, remainder, err := parser.Parse(*req.AIOverview)
	if err != nil {
		uc.record(ctx, entry, start, err)
		return nil, err
	}
	entry.RecordCount = len(records)
	entry.ScoreProfile = model.NewScoreProfile(model.Scores(records))

	doc, err := uc.assembler.Assemble(ctx, meta, report.BuildChart(records), report.BuildTable(records), remainder)
	if err != nil {
		uc.record(ctx, entry, start, err)
		return nil, err
	}
	entry.PageCount = doc.Pages
	entry.SizeBytes = len(doc.Data)
	uc.record(ctx, entry, start, nil)

	uc.logger.Info("report generated",
		zap.String("interview_id", meta.InterviewID),
		zap.Int("records", len(records)),
		zap.Int("pages", doc.Pages),
		zap.Int("degraded", len(doc.Degraded)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &ReportResult{
		Filename:    "Report_" + meta.InterviewID + ".pdf",
		Document:    doc,
		RecordCount: len(records),
	}, nil
}

// record writes the audit row. A failed write never fails the request.
func (uc *ReportUsecase) record(ctx context.Context, entry *model.ReportLog, start time.Time, cause error) {
	if uc.logs == nil {
		return
	}
	entry.Status = model.ReportStatusCompleted
	if cause != nil {
		entry.Status = model.ReportStatusFailed
		entry.ErrorMessage = cause.Error()
	}
	entry.DurationMs = time.Since(start).Milliseconds()
	entry.CreatedAt = time.Now()

	if err := uc.logs.CreateLog(context.WithoutCancel(ctx), entry); err != nil {
		uc.logger.Warn("could not record report log", zap.String("interview_id", entry.InterviewID), zap.Error(err))
	}
}

func (uc *ReportUsecase) GetLog(ctx context.Context, id uuid.UUID) (*model.ReportLog, error) {
	if uc.logs == nil {
		return nil, ErrReportLogDisabled
	}
	log, err := uc.logs.FindLogByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (uc *ReportUsecase) ListLogs(ctx context.Context, page, pageSize int) ([]model.ReportLog, *response.Pagination, error) {
	if uc.logs == nil {
		return nil, nil, ErrReportLogDisabled
	}
	p := response.NewPagination(page, pageSize, 0)
	logs, total, err := uc.logs.ListLogs(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, nil, err
	}
	return logs, response.NewPagination(p.Page, p.PageSize, total), nil
}

// SimilarLogs returns the completed reports whose scores lie closest to the
// report id, for reports with the same number of questions.
func (uc *ReportUsecase) SimilarLogs(ctx context.Context, id uuid.UUID, topK int) ([]model.ReportLog, error) {
	target, err := uc.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}
	if topK < 1 || topK > MaxSimilar {
		topK = MaxSimilar
	}
	return uc.logs.SearchSimilar(ctx, target, topK)
}
