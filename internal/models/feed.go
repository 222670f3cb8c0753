package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostTypeText      = "text"
	PostTypeImage     = "image"
	PostTypeMilestone = "milestone"
)

const (
	ReactionHearYou    = "hear_you"
	ReactionStayStrong = "stay_strong"
	ReactionProud      = "proud"
)

// ReactionTypes lists every reaction a user can attach to a post or comment.
var ReactionTypes = []string{ReactionHearYou, ReactionStayStrong, ReactionProud}

func IsReactionType(t string) bool {
	for _, r := range ReactionTypes {
		if r == t {
			return true
		}
	}
	return false
}

func IsPostType(t string) bool {
	return t == PostTypeText || t == PostTypeImage || t == PostTypeMilestone
}

type Post struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	AddictionID *uuid.UUID     `gorm:"type:uuid" json:"addiction_id,omitempty"`
	Content     string         `gorm:"type:text;not null;default:''" json:"content"`
	ImageURL    string         `gorm:"type:text;not null;default:''" json:"image_url"`
	PostType    string         `gorm:"size:20;not null;default:'text'" json:"post_type"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Reaction is unique per (post, user, type).
type Reaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_post_user_type,priority:1" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_post_user_type,priority:2" json:"user_id"`
	Type      string    `gorm:"size:20;not null;uniqueIndex:idx_reactions_post_user_type,priority:3" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (Reaction) TableName() string {
	return "reactions"
}

// CommentReaction is unique per (comment, user, type).
type CommentReaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comment_reactions_comment_user_type,priority:1" json:"comment_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comment_reactions_comment_user_type,priority:2" json:"user_id"`
	Type      string    `gorm:"size:20;not null;default:'hear_you';uniqueIndex:idx_comment_reactions_comment_user_type,priority:3" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentReaction) TableName() string {
	return "comment_reactions"
}
