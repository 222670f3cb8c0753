package dto

import "github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"

type CreateReportRequest struct {
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
}

type CreateReportResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Report  *models.Report `json:"report,omitempty"`
}

type UpdateReportRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes"`
}

type UpdateReportResponse struct {
	Success bool           `json:"success"`
	Report  *models.Report `json:"report"`
}

type ListReportsResponse struct {
	Success bool                       `json:"success"`
	Reports []models.ReportWithPreview `json:"reports"`
}

// ReportStats maps every known report status to its count. Statuses with no
// reports are present with zero.
type ReportStats map[string]int64

type ReportStatsResponse struct {
	Success bool        `json:"success"`
	Stats   ReportStats `json:"stats"`
}
