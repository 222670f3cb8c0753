package postgres

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	return translate(s.db.WithContext(ctx).Create(post).Error)
}

func (s *Store) GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *Store) ListPosts(ctx context.Context, filter storage.PostFilter) ([]models.Post, error) {
	var posts []models.Post
	query := s.db.WithContext(ctx).Model(&models.Post{})
	if filter.AddictionID != nil {
		query = query.Where("addiction_id = ?", *filter.AddictionID)
	}
	err := query.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (s *Store) SoftDeletePost(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	return translate(s.db.WithContext(ctx).Create(comment).Error)
}

func (s *Store) GetComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (s *Store) ListComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (s *Store) DeleteComment(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) CountComments(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uuid.UUID
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		counts[r.PostID] = r.Count
	}
	return counts, nil
}

func (s *Store) AddReaction(ctx context.Context, reaction *models.Reaction) error {
	return translate(s.db.WithContext(ctx).Create(reaction).Error)
}

func (s *Store) RemoveReaction(ctx context.Context, postID, userID uuid.UUID, reactionType string) error {
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND type = ?", postID, userID, reactionType).
		Delete(&models.Reaction{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) CountReactions(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]storage.ReactionCounts, error) {
	counts := make(map[uuid.UUID]storage.ReactionCounts, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uuid.UUID
		Type   string
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("post_id, type, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id, type").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		if counts[r.PostID] == nil {
			counts[r.PostID] = storage.ReactionCounts{}
		}
		counts[r.PostID][r.Type] = r.Count
	}
	return counts, nil
}

func (s *Store) UserReactions(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	mine := make(map[uuid.UUID][]string)
	if len(postIDs) == 0 {
		return mine, nil
	}

	var reactions []models.Reaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Order("created_at ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range reactions {
		mine[r.PostID] = append(mine[r.PostID], r.Type)
	}
	return mine, nil
}

func (s *Store) AddCommentReaction(ctx context.Context, reaction *models.CommentReaction) error {
	return translate(s.db.WithContext(ctx).Create(reaction).Error)
}

func (s *Store) RemoveCommentReaction(ctx context.Context, commentID, userID uuid.UUID, reactionType string) error {
	result := s.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ? AND type = ?", commentID, userID, reactionType).
		Delete(&models.CommentReaction{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) CountCommentReactions(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]storage.ReactionCounts, error) {
	counts := make(map[uuid.UUID]storage.ReactionCounts, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CommentID uuid.UUID
		Type      string
		Count     int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.CommentReaction{}).
		Select("comment_id, type, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id, type").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		if counts[r.CommentID] == nil {
			counts[r.CommentID] = storage.ReactionCounts{}
		}
		counts[r.CommentID][r.Type] = r.Count
	}
	return counts, nil
}
