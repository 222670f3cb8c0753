package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

var ErrReportNotFound = errors.New("report not found")

type ReportService struct {
	store storage.ReportStore
	now   func() time.Time
}

func NewReportService(store storage.ReportStore) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// CreateReport stores a report as given. Nothing is validated: the content
// type and id are kept verbatim so moderators see exactly what was flagged.
func (s *ReportService) CreateReport(ctx context.Context, reporterID string, req *dto.CreateReportRequest) (*models.Report, error) {
	if reporterID == "" {
		reporterID = models.AnonymousReporter
	}

	report := models.Report{
		ID:          uuid.New(),
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Reason:      req.Reason,
		Notes:       req.Notes,
		ReporterID:  reporterID,
		Status:      models.ReportPending,
	}

	if err := s.store.CreateReport(ctx, &report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// ListReports returns reports with the given status (pending when empty),
// newest first, each with a preview of the reported content.
func (s *ReportService) ListReports(ctx context.Context, status string) ([]models.ReportWithPreview, error) {
	if status == "" {
		status = models.ReportPending
	}

	reports, err := s.store.ListReports(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	out := make([]models.ReportWithPreview, 0, len(reports))
	for _, r := range reports {
		item := models.ReportWithPreview{Report: r}
		if ref, ok := models.ParseContentRef(r.ContentType, r.ContentID); ok {
			preview, err := s.ResolveContent(ctx, ref)
			if err != nil {
				return nil, err
			}
			item.ContentPreview = preview
		}
		out = append(out, item)
	}
	return out, nil
}

// ResolveContent returns the text a content reference points at, or nil when
// the referenced row does not exist.
func (s *ReportService) ResolveContent(ctx context.Context, ref models.ContentRef) (*string, error) {
	var (
		text string
		err  error
	)
	switch ref.Kind {
	case models.ContentPost:
		text, err = s.store.PostContent(ctx, ref.ID)
	case models.ContentComment:
		text, err = s.store.CommentContent(ctx, ref.ID)
	default:
		return nil, nil
	}

	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s %s: %w", ref.Kind, ref.ID, err)
	}
	return &text, nil
}

// UpdateStatus records a moderator decision. Any status string is accepted.
func (s *ReportService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateReportRequest) (*models.Report, error) {
	report, err := s.store.UpdateReportStatus(ctx, id, req.Status, req.ReviewNotes, s.now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return report, nil
}

func (s *ReportService) Stats(ctx context.Context) (dto.ReportStats, error) {
	counts, err := s.store.CountReportsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	stats := make(dto.ReportStats, len(models.ReportStatuses))
	for _, status := range models.ReportStatuses {
		stats[status] = counts[status]
	}
	return stats, nil
}
