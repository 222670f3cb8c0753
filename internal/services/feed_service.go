package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
	MaxPostLength    = 2000
	MaxCommentLength = 1000
)

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrNotOwner            = errors.New("not the owner of this resource")
	ErrUnknownActor        = errors.New("acting user does not exist")
	ErrUnknownReference    = errors.New("referenced user or addiction does not exist")
	ErrInvalidReactionType = errors.New("invalid reaction type")
	ErrInvalidPostType     = errors.New("invalid post type")
	ErrEmptyContent        = errors.New("content is required")
	ErrContentTooLong      = errors.New("content is too long")
)

type FeedService struct {
	store   storage.FeedStore
	content *ContentPolicy
}

func NewFeedService(store storage.FeedStore, content *ContentPolicy) *FeedService {
	return &FeedService{store: store, content: content}
}

func (s *FeedService) CreatePost(ctx context.Context, userID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostView, error) {
	content := s.content.Sanitize(req.Content)
	if content == "" && req.ImageURL == "" {
		return nil, ErrEmptyContent
	}
	if runeLen(content) > MaxPostLength {
		return nil, ErrContentTooLong
	}

	postType := req.PostType
	if postType == "" {
		postType = models.PostTypeText
		if req.ImageURL != "" {
			postType = models.PostTypeImage
		}
	}
	if !models.IsPostType(postType) {
		return nil, ErrInvalidPostType
	}

	post := models.Post{
		ID:          uuid.New(),
		UserID:      userID,
		AddictionID: req.AddictionID,
		Content:     content,
		ImageURL:    req.ImageURL,
		PostType:    postType,
	}
	if err := s.store.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &dto.PostView{
		Post:        post,
		Reactions:   summarize(nil),
		MyReactions: []string{},
	}, nil
}

// ListFeed returns posts newest first. viewer may be nil for anonymous
// callers, in which case MyReactions is always empty.
func (s *FeedService) ListFeed(ctx context.Context, viewer *uuid.UUID, filter storage.PostFilter) ([]dto.PostView, error) {
	filter.Page = clampPage(filter.Page)

	posts, err := s.store.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return s.decorate(ctx, viewer, posts)
}

func (s *FeedService) GetPost(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*dto.PostView, error) {
	post, err := s.store.GetPost(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	views, err := s.decorate(ctx, viewer, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *FeedService) DeletePost(ctx context.Context, userID, id uuid.UUID) error {
	post, err := s.store.GetPost(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if post.UserID != userID {
		return ErrNotOwner
	}

	if err := s.store.SoftDeletePost(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// ListComments returns the comments of a visible post, oldest first.
func (s *FeedService) ListComments(ctx context.Context, postID uuid.UUID) ([]dto.CommentView, error) {
	if _, err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.store.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := make([]uuid.UUID, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	counts, err := s.store.CountCommentReactions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count comment reactions: %w", err)
	}

	out := make([]dto.CommentView, len(comments))
	for i, c := range comments {
		out[i] = dto.CommentView{Comment: c, Reactions: summarize(counts[c.ID])}
	}
	return out, nil
}

func (s *FeedService) AddComment(ctx context.Context, userID, postID uuid.UUID, req *dto.CreateCommentRequest) (*models.Comment, error) {
	content := s.content.Sanitize(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if runeLen(content) > MaxCommentLength {
		return nil, ErrContentTooLong
	}
	if _, err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:      uuid.New(),
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.store.CreateComment(ctx, &comment); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnknownActor
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

func (s *FeedService) DeleteComment(ctx context.Context, userID, id uuid.UUID) error {
	comment, err := s.store.GetComment(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.UserID != userID {
		return ErrNotOwner
	}

	if err := s.store.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// TogglePostReaction adds the reaction when absent and removes it when
// present. The returned flag is true when the reaction is now set.
func (s *FeedService) TogglePostReaction(ctx context.Context, userID, postID uuid.UUID, reactionType string) (bool, error) {
	if !models.IsReactionType(reactionType) {
		return false, ErrInvalidReactionType
	}
	if _, err := s.requirePost(ctx, postID); err != nil {
		return false, err
	}

	err := s.store.AddReaction(ctx, &models.Reaction{
		ID:     uuid.New(),
		PostID: postID,
		UserID: userID,
		Type:   reactionType,
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrDuplicate):
		if err := s.store.RemoveReaction(ctx, postID, userID, reactionType); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return false, fmt.Errorf("failed to remove reaction: %w", err)
		}
		return false, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, ErrUnknownActor
	default:
		return false, fmt.Errorf("failed to add reaction: %w", err)
	}
}

// ToggleCommentReaction behaves like TogglePostReaction; an empty type means
// hear_you.
func (s *FeedService) ToggleCommentReaction(ctx context.Context, userID, commentID uuid.UUID, reactionType string) (bool, error) {
	if reactionType == "" {
		reactionType = models.ReactionHearYou
	}
	if !models.IsReactionType(reactionType) {
		return false, ErrInvalidReactionType
	}
	if _, err := s.store.GetComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, ErrCommentNotFound
		}
		return false, fmt.Errorf("failed to get comment: %w", err)
	}

	err := s.store.AddCommentReaction(ctx, &models.CommentReaction{
		ID:        uuid.New(),
		CommentID: commentID,
		UserID:    userID,
		Type:      reactionType,
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrDuplicate):
		if err := s.store.RemoveCommentReaction(ctx, commentID, userID, reactionType); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return false, fmt.Errorf("failed to remove comment reaction: %w", err)
		}
		return false, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, ErrUnknownActor
	default:
		return false, fmt.Errorf("failed to add comment reaction: %w", err)
	}
}

func (s *FeedService) requirePost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post, err := s.store.GetPost(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (s *FeedService) decorate(ctx context.Context, viewer *uuid.UUID, posts []models.Post) ([]dto.PostView, error) {
	ids := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	comments, err := s.store.CountComments(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	reactions, err := s.store.CountReactions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	mine := map[uuid.UUID][]string{}
	if viewer != nil {
		mine, err = s.store.UserReactions(ctx, *viewer, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load viewer reactions: %w", err)
		}
	}

	out := make([]dto.PostView, len(posts))
	for i, p := range posts {
		my := mine[p.ID]
		if my == nil {
			my = []string{}
		}
		out[i] = dto.PostView{
			Post:         p,
			CommentCount: comments[p.ID],
			Reactions:    summarize(reactions[p.ID]),
			MyReactions:  my,
		}
	}
	return out, nil
}

func summarize(counts storage.ReactionCounts) dto.ReactionSummary {
	summary := make(dto.ReactionSummary, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		summary[t] = counts[t]
	}
	return summary
}

func clampPage(p storage.Page) storage.Page {
	if p.Limit <= 0 {
		p.Limit = DefaultFeedLimit
	}
	if p.Limit > MaxFeedLimit {
		p.Limit = MaxFeedLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
