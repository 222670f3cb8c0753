package inmemory

import (
	"context"
	"sort"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) CreatePost(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[post.UserID]; !ok {
		return storage.ErrNotFound
	}
	if post.AddictionID != nil {
		if _, ok := s.addictions[*post.AddictionID]; !ok {
			return storage.ErrNotFound
		}
	}
	ensureID(&post.ID)
	if post.PostType == "" {
		post.PostType = models.PostTypeText
	}
	now := s.now()
	post.CreatedAt = now
	post.UpdatedAt = now

	stored := *post
	s.posts[post.ID] = &stored
	return nil
}

func (s *Store) GetPost(_ context.Context, id uuid.UUID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok || p.DeletedAt.Valid {
		return nil, storage.ErrNotFound
	}
	post := *p
	return &post, nil
}

func (s *Store) ListPosts(_ context.Context, filter storage.PostFilter) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.DeletedAt.Valid {
			continue
		}
		if filter.AddictionID != nil && (p.AddictionID == nil || *p.AddictionID != *filter.AddictionID) {
			continue
		}
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return paginate(posts, filter.Page), nil
}

func paginate[T any](items []T, page storage.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	items = items[page.Offset:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}

func (s *Store) SoftDeletePost(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok || p.DeletedAt.Valid {
		return storage.ErrNotFound
	}
	p.DeletedAt = gorm.DeletedAt{Time: s.now(), Valid: true}
	return nil
}

func (s *Store) CreateComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[comment.PostID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.users[comment.UserID]; !ok {
		return storage.ErrNotFound
	}
	ensureID(&comment.ID)
	comment.CreatedAt = s.now()

	stored := *comment
	s.comments[comment.ID] = &stored
	return nil
}

func (s *Store) GetComment(_ context.Context, id uuid.UUID) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	comment := *c
	return &comment, nil
}

func (s *Store) ListComments(_ context.Context, postID uuid.UUID) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (s *Store) DeleteComment(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return storage.ErrNotFound
	}
	s.deleteCommentLocked(id)
	return nil
}

func (s *Store) CountComments(_ context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := idSet(postIDs)
	counts := make(map[uuid.UUID]int64, len(postIDs))
	for _, c := range s.comments {
		if wanted[c.PostID] {
			counts[c.PostID]++
		}
	}
	return counts, nil
}

func (s *Store) AddReaction(_ context.Context, reaction *models.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[reaction.PostID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.users[reaction.UserID]; !ok {
		return storage.ErrNotFound
	}
	for _, r := range s.reactions {
		if r.PostID == reaction.PostID && r.UserID == reaction.UserID && r.Type == reaction.Type {
			return storage.ErrDuplicate
		}
	}
	ensureID(&reaction.ID)
	reaction.CreatedAt = s.now()

	stored := *reaction
	s.reactions[reaction.ID] = &stored
	return nil
}

func (s *Store) RemoveReaction(_ context.Context, postID, userID uuid.UUID, reactionType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.reactions {
		if r.PostID == postID && r.UserID == userID && r.Type == reactionType {
			delete(s.reactions, id)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *Store) CountReactions(_ context.Context, postIDs []uuid.UUID) (map[uuid.UUID]storage.ReactionCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := idSet(postIDs)
	counts := make(map[uuid.UUID]storage.ReactionCounts, len(postIDs))
	for _, r := range s.reactions {
		if !wanted[r.PostID] {
			continue
		}
		if counts[r.PostID] == nil {
			counts[r.PostID] = storage.ReactionCounts{}
		}
		counts[r.PostID][r.Type]++
	}
	return counts, nil
}

func (s *Store) UserReactions(_ context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := idSet(postIDs)
	mine := make(map[uuid.UUID][]string)
	for _, r := range s.reactions {
		if r.UserID == userID && wanted[r.PostID] {
			mine[r.PostID] = append(mine[r.PostID], r.Type)
		}
	}
	for postID := range mine {
		sort.Strings(mine[postID])
	}
	return mine, nil
}

func (s *Store) AddCommentReaction(_ context.Context, reaction *models.CommentReaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[reaction.CommentID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.users[reaction.UserID]; !ok {
		return storage.ErrNotFound
	}
	if reaction.Type == "" {
		reaction.Type = models.ReactionHearYou
	}
	for _, r := range s.commentReactions {
		if r.CommentID == reaction.CommentID && r.UserID == reaction.UserID && r.Type == reaction.Type {
			return storage.ErrDuplicate
		}
	}
	ensureID(&reaction.ID)
	reaction.CreatedAt = s.now()

	stored := *reaction
	s.commentReactions[reaction.ID] = &stored
	return nil
}

func (s *Store) RemoveCommentReaction(_ context.Context, commentID, userID uuid.UUID, reactionType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.commentReactions {
		if r.CommentID == commentID && r.UserID == userID && r.Type == reactionType {
			delete(s.commentReactions, id)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *Store) CountCommentReactions(_ context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]storage.ReactionCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := idSet(commentIDs)
	counts := make(map[uuid.UUID]storage.ReactionCounts, len(commentIDs))
	for _, r := range s.commentReactions {
		if !wanted[r.CommentID] {
			continue
		}
		if counts[r.CommentID] == nil {
			counts[r.CommentID] = storage.ReactionCounts{}
		}
		counts[r.CommentID][r.Type]++
	}
	return counts, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// The *Locked helpers mirror ON DELETE CASCADE. Callers hold the write lock.

func (s *Store) deletePostLocked(id uuid.UUID) {
	for cid, c := range s.comments {
		if c.PostID == id {
			s.deleteCommentLocked(cid)
		}
	}
	for rid, r := range s.reactions {
		if r.PostID == id {
			delete(s.reactions, rid)
		}
	}
	delete(s.posts, id)
}

func (s *Store) deleteCommentLocked(id uuid.UUID) {
	for rid, r := range s.commentReactions {
		if r.CommentID == id {
			delete(s.commentReactions, rid)
		}
	}
	delete(s.comments, id)
}
