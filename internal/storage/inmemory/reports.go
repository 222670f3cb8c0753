package inmemory

import (
	"context"
	"sort"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateReport(_ context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&report.ID)
	if _, ok := s.reports[report.ID]; ok {
		return storage.ErrDuplicate
	}
	if report.Status == "" {
		report.Status = models.ReportPending
	}
	if report.ReporterID == "" {
		report.ReporterID = models.AnonymousReporter
	}
	now := s.now()
	report.CreatedAt = now
	report.UpdatedAt = now

	stored := *report
	s.reports[report.ID] = &stored
	return nil
}

func (s *Store) ListReports(_ context.Context, status string) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]models.Report, 0)
	for _, r := range s.reports {
		if r.Status == status {
			reports = append(reports, *r)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (s *Store) UpdateReportStatus(_ context.Context, id string, status, reviewNotes string, reviewedAt time.Time) (*models.Report, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return nil, storage.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[reportID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	r.Status = status
	r.ReviewNotes = reviewNotes
	r.ReviewedAt = &reviewedAt
	r.UpdatedAt = s.now()

	updated := *r
	return &updated, nil
}

func (s *Store) CountReportsByStatus(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range s.reports {
		counts[r.Status]++
	}
	return counts, nil
}

func (s *Store) PostContent(_ context.Context, id string) (string, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return "", storage.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// soft-deleted posts still resolve
	p, ok := s.posts[postID]
	if !ok {
		return "", storage.ErrNotFound
	}
	return p.Content, nil
}

func (s *Store) CommentContent(_ context.Context, id string) (string, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return "", storage.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[commentID]
	if !ok {
		return "", storage.ErrNotFound
	}
	return c.Content, nil
}
