package server

import (
	"time"

	"github.com/netresearch/go-cronnext"
)

// ValidateRequest is the body of POST /api/cron/validate.
type ValidateRequest struct {
	Expression string `json:"expression" binding:"required" example:"0 0 L * *"`
}

// NextResponse lists upcoming execution times of an expression.
type NextResponse struct {
	Expression string      `json:"expression" example:"@daily"`
	Canonical  string      `json:"canonical" example:"0 0 * * *"`
	Alias      string      `json:"alias,omitempty" example:"@daily"`
	Next       string      `json:"next" example:"04.01.2025, 00:00:00"`
	NextTime   time.Time   `json:"next_time" format:"date-time"`
	Runs       []time.Time `json:"runs"`
}

// AnalysisResponse mirrors cronnext.Analysis for JSON clients.
type AnalysisResponse struct {
	Valid      bool              `json:"valid"`
	Error      string            `json:"error,omitempty"`
	Alias      string            `json:"alias,omitempty"`
	Expression string            `json:"expression,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	NextRun    *time.Time        `json:"next_run,omitempty" format:"date-time"`
	Portable   bool              `json:"portable"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"invalid cron expression"`
	Details string `json:"details,omitempty"`
}

func newAnalysisResponse(a cronnext.Analysis) AnalysisResponse {
	resp := AnalysisResponse{
		Valid:      a.Valid,
		Alias:      a.Alias,
		Expression: a.Expression,
		Portable:   a.Portable,
		Warnings:   a.Warnings,
	}
	if a.Error != nil {
		resp.Error = a.Error.Error()
	}
	if len(a.Fields) > 0 {
		resp.Fields = a.Fields
	}
	if !a.NextRun.IsZero() {
		next := a.NextRun
		resp.NextRun = &next
	}
	return resp
}
