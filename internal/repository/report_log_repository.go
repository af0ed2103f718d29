package repository

import (
	"context"

	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportLogRepository struct {
	db *gorm.DB
}

func NewReportLogRepository(db *gorm.DB) *ReportLogRepository {
	return &ReportLogRepository{db}
}

func (r *ReportLogRepository) CreateLog(ctx context.Context, log *model.ReportLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ReportLogRepository) FindLogByID(ctx context.Context, id uuid.UUID) (*model.ReportLog, error) {
	var l model.ReportLog
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

// ListLogs returns one page of logs, newest first, and the total count.
func (r *ReportLogRepository) ListLogs(ctx context.Context, limit, offset int) ([]model.ReportLog, int64, error) {
	var (
		logs  []model.ReportLog
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.ReportLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, total, err
}

// SearchSimilar finds completed reports whose score profile is closest to the
// given log's. Only profiles with the same number of questions are comparable.
func (r *ReportLogRepository) SearchSimilar(ctx context.Context, target *model.ReportLog, topK int) ([]model.ReportLog, error) {
	var logs []model.ReportLog
	if target.ScoreProfile == nil {
		return logs, nil
	}

	// <-> is Euclidean distance
	err := r.db.WithContext(ctx).Raw(`
        SELECT *
        FROM report_logs
        WHERE id <> ?
          AND status = ?
          AND score_profile IS NOT NULL
          AND vector_dims(score_profile) = ?
        ORDER BY score_profile <-> ?
        LIMIT ?
    `, target.ID, model.ReportStatusCompleted, len(target.ScoreProfile.Slice()), target.ScoreProfile, topK).Scan(&logs).Error

	return logs, err
}
