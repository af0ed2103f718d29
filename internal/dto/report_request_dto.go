package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

const MessageNoJSON = "No JSON data provided"

// ReportRequestDTO is the body of POST /generate-report. Pointers tell an
// absent field apart from an empty one.
type ReportRequestDTO struct {
	CandidateName     *string `json:"candidate_name" validate:"required"`
	CandidatePosition *string `json:"candidate_position" validate:"required"`
	Date              *string `json:"date" validate:"required"`
	InterviewID       *string `json:"interview_id" validate:"required"`
	AIOverview        *string `json:"ai_overview" validate:"required"`
	PhotoURL          *string `json:"photo_url,omitempty"`
}

// ValidationError is a request rejected before any rendering. Field is empty
// when the body itself is unusable.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseReportRequest reads body into a request, reporting the first missing
// field in declaration order. A JSON null counts as missing.
func ParseReportRequest(body []byte) (*ReportRequestDTO, error) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil, &ValidationError{Message: MessageNoJSON}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() || len(root.Map()) == 0 {
		return nil, &ValidationError{Message: MessageNoJSON}
	}

	req := &ReportRequestDTO{
		CandidateName:     field(root, "candidate_name"),
		CandidatePosition: field(root, "candidate_position"),
		Date:              field(root, "date"),
		InterviewID:       field(root, "interview_id"),
		AIOverview:        field(root, "ai_overview"),
		PhotoURL:          field(root, "photo_url"),
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			name := verrs[0].Field()
			return nil, &ValidationError{Message: "Missing field: " + name, Field: name}
		}
		return nil, err
	}
	return req, nil
}

func field(root gjson.Result, key string) *string {
	r := root.Get(key)
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

// Metadata returns the cover-page fields of the request.
func (r *ReportRequestDTO) Metadata() model.CandidateMetadata {
	return model.CandidateMetadata{
		Name:        deref(r.CandidateName),
		Position:    deref(r.CandidatePosition),
		Date:        deref(r.Date),
		InterviewID: deref(r.InterviewID),
		PhotoURL:    deref(r.PhotoURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
