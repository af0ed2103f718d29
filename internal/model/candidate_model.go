package model

type CandidateMetadata struct {
	Name        string `json:"candidate_name"`
	Position    string `json:"candidate_position"`
	Date        string `json:"date"`
	InterviewID string `json:"interview_id"`
	PhotoURL    string `json:"photo_url,omitempty"`
}
