package postgres

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
)

func (s *Store) CreateReport(ctx context.Context, report *models.Report) error {
	return translate(s.db.WithContext(ctx).Create(report).Error)
}

func (s *Store) ListReports(ctx context.Context, status string) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, translate(err)
	}
	return reports, nil
}

func (s *Store) UpdateReportStatus(ctx context.Context, id string, status, reviewNotes string, reviewedAt time.Time) (*models.Report, error) {
	reportID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"status":       status,
			"review_notes": reviewNotes,
			"reviewed_at":  reviewedAt,
		})
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}

	var report models.Report
	if err := s.db.WithContext(ctx).First(&report, "id = ?", reportID).Error; err != nil {
		return nil, translate(err)
	}
	return &report, nil
}

func (s *Store) CountReportsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// PostContent includes soft-deleted posts so moderators still see what was
// reported after the author removed it.
func (s *Store) PostContent(ctx context.Context, id string) (string, error) {
	postID, err := parseID(id)
	if err != nil {
		return "", err
	}
	var post models.Post
	if err := s.db.WithContext(ctx).Unscoped().Select("content").First(&post, "id = ?", postID).Error; err != nil {
		return "", translate(err)
	}
	return post.Content, nil
}

func (s *Store) CommentContent(ctx context.Context, id string) (string, error) {
	commentID, err := parseID(id)
	if err != nil {
		return "", err
	}
	var comment models.Comment
	if err := s.db.WithContext(ctx).Select("content").First(&comment, "id = ?", commentID).Error; err != nil {
		return "", translate(err)
	}
	return comment.Content, nil
}
