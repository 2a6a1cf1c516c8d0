// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/password-auditor/backend/internal/domain/entity"
)

// AuditPasswordRequest represents the request body for a password audit.
// Password is a pointer so an empty password (allowed, scores 0) can be
// distinguished from a missing field.
type AuditPasswordRequest struct {
	Password        *string `json:"password" binding:"required"`
	SkipBreachCheck bool    `json:"skip_breach_check"`
}

// CriteriaResponse reports the outcome of each strength criterion.
type CriteriaResponse struct {
	MinLength          bool `json:"min_length"`
	HasUpper           bool `json:"has_upper"`
	HasLower           bool `json:"has_lower"`
	HasDigit           bool `json:"has_digit"`
	HasSpecial         bool `json:"has_special"`
	HighEntropy        bool `json:"high_entropy"`
	NoRepeatedSequence bool `json:"no_repeated_sequence"`
	NotCommonWord      bool `json:"not_common_word"`
}

// BreachResponse reports the breach lookup outcome.
type BreachResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// AuditPasswordResponse represents the response for a password audit.
type AuditPasswordResponse struct {
	AuditID     string           `json:"audit_id"`
	Score       int              `json:"score"`
	Label       string           `json:"label"`
	EntropyBits float64          `json:"entropy_bits"`
	Criteria    CriteriaResponse `json:"criteria"`
	Suggestions []string         `json:"suggestions"`
	Breach      BreachResponse   `json:"breach"`
	CheckedAt   time.Time        `json:"checked_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToAuditPasswordResponse converts a domain PasswordAudit to its response DTO.
func ToAuditPasswordResponse(audit *entity.PasswordAudit) AuditPasswordResponse {
	report := audit.Report
	return AuditPasswordResponse{
		AuditID:     audit.ID.String(),
		Score:       report.Score,
		Label:       string(report.Label),
		EntropyBits: report.EntropyBits,
		Criteria: CriteriaResponse{
			MinLength:          report.Criteria.MinLength,
			HasUpper:           report.Criteria.HasUpper,
			HasLower:           report.Criteria.HasLower,
			HasDigit:           report.Criteria.HasDigit,
			HasSpecial:         report.Criteria.HasSpecial,
			HighEntropy:        report.Criteria.HighEntropy,
			NoRepeatedSequence: report.Criteria.NoRepeatedSequence,
			NotCommonWord:      report.Criteria.NotCommonWord,
		},
		Suggestions: report.Suggestions,
		Breach: BreachResponse{
			Status: string(audit.Breach.State),
			Count:  audit.Breach.Count,
			Reason: audit.Breach.Reason,
		},
		CheckedAt: audit.CheckedAt,
	}
}
