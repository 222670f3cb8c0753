package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportPending   = "pending"
	ReportReviewed  = "reviewed"
	ReportDismissed = "dismissed"
	ReportActioned  = "actioned"
)

// ReportStatuses is the fixed key set of the stats endpoint.
var ReportStatuses = []string{ReportPending, ReportReviewed, ReportDismissed, ReportActioned}

// AnonymousReporter is stored when a report arrives without any identity.
const AnonymousReporter = "anonymous"

// Report flags a post or comment for moderation. ContentID is deliberately not
// a foreign key: the referenced content may be gone by the time it is reviewed.
type Report struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContentID   string     `gorm:"type:text;not null;index" json:"content_id"`
	ContentType string     `gorm:"size:20;not null" json:"content_type"`
	Reason      string     `gorm:"type:text;not null;default:''" json:"reason"`
	Notes       string     `gorm:"type:text;not null;default:''" json:"notes"`
	ReporterID  string     `gorm:"type:text;not null;default:'anonymous'" json:"reporter_id"`
	Status      string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ReviewNotes string     `gorm:"type:text;not null;default:''" json:"review_notes"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportWithPreview is a report row enriched with the text of the content it
// points at. ContentPreview is nil when the content no longer resolves.
type ReportWithPreview struct {
	Report
	ContentPreview *string `json:"content_preview"`
}
