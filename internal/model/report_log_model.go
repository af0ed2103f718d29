package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

const (
	ReportStatusCompleted = "completed"
	ReportStatusFailed    = "failed"
)

// ReportLog records one generation attempt. The document itself is never stored.
type ReportLog struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID   string           `gorm:"type:varchar(255);index" json:"interview_id"`
	CandidateName string           `gorm:"type:varchar(255)" json:"candidate_name"`
	Position      string           `gorm:"type:varchar(255)" json:"candidate_position"`
	Status        string           `gorm:"type:varchar(50)" json:"status"` // "completed" or "failed"
	RecordCount   int              `json:"record_count"`
	PageCount     int              `json:"page_count"`
	SizeBytes     int              `json:"size_bytes"`
	ErrorMessage  string           `gorm:"type:text" json:"error_message,omitempty"`
	DurationMs    int64            `json:"duration_ms"`
	ScoreProfile  *pgvector.Vector `gorm:"type:vector" json:"score_profile,omitempty"` // one dimension per question
	CreatedAt     time.Time        `json:"created_at"`
}

func (r *ReportLog) TableName() string {
	return "report_logs"
}

// NewScoreProfile converts scores to a vector. Returns nil when there are no scores
// since pgvector rejects zero-dimension vectors.
func NewScoreProfile(scores []int) *pgvector.Vector {
	if len(scores) == 0 {
		return nil
	}
	values := make([]float32, len(scores))
	for i, s := range scores {
		values[i] = float32(s)
	}
	v := pgvector.NewVector(values)
	return &v
}
