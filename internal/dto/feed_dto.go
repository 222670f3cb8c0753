package dto

import (
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl"`
	PostType    string     `json:"postType"`
	AddictionID *uuid.UUID `json:"addictionId"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type ReactRequest struct {
	Type string `json:"type"`
}

type ReactResponse struct {
	Success bool   `json:"success"`
	Type    string `json:"type"`
	Active  bool   `json:"active"`
}

// ReactionSummary maps every reaction type to its count, zero-filled.
type ReactionSummary map[string]int64

type PostView struct {
	models.Post
	CommentCount int64           `json:"comment_count"`
	Reactions    ReactionSummary `json:"reactions"`
	MyReactions  []string        `json:"my_reactions"`
}

type CommentView struct {
	models.Comment
	Reactions ReactionSummary `json:"reactions"`
}

type FeedResponse struct {
	Success bool       `json:"success"`
	Posts   []PostView `json:"posts"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
}

type PostResponse struct {
	Success bool     `json:"success"`
	Post    PostView `json:"post"`
}

type CommentsResponse struct {
	Success  bool          `json:"success"`
	Comments []CommentView `json:"comments"`
}
