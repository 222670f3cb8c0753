package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Page limits a listing.
type Page struct {
	Limit  int
	Offset int
}

// PostFilter narrows the feed.
type PostFilter struct {
	AddictionID *uuid.UUID
	Page
}

// ReactionCounts maps reaction type to count.
type ReactionCounts map[string]int64

type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) error
	// ListReports returns reports with the given status, newest first.
	ListReports(ctx context.Context, status string) ([]models.Report, error)
	// UpdateReportStatus returns ErrNotFound when no report has the id.
	UpdateReportStatus(ctx context.Context, id string, status, reviewNotes string, reviewedAt time.Time) (*models.Report, error)
	CountReportsByStatus(ctx context.Context) (map[string]int64, error)

	// PostContent and CommentContent resolve the text of reported content.
	// Both return ErrNotFound for unknown or malformed ids.
	PostContent(ctx context.Context, id string) (string, error)
	CommentContent(ctx context.Context, id string) (string, error)
}

type FeedStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error)
	SoftDeletePost(ctx context.Context, id uuid.UUID) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	CountComments(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// AddReaction returns ErrDuplicate when the (post, user, type) triple exists.
	AddReaction(ctx context.Context, reaction *models.Reaction) error
	RemoveReaction(ctx context.Context, postID, userID uuid.UUID, reactionType string) error
	CountReactions(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]ReactionCounts, error)
	UserReactions(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID][]string, error)

	// AddCommentReaction returns ErrDuplicate when the (comment, user, type) triple exists.
	AddCommentReaction(ctx context.Context, reaction *models.CommentReaction) error
	RemoveCommentReaction(ctx context.Context, commentID, userID uuid.UUID, reactionType string) error
	CountCommentReactions(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]ReactionCounts, error)
}

type UserStore interface {
	// CreateUser returns ErrDuplicate on a taken firebase uid or username.
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UsernameTaken(ctx context.Context, username string, exceptID uuid.UUID) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	// DeleteUser removes the row and everything that cascades from it.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type RecoveryStore interface {
	ListAddictions(ctx context.Context) ([]models.Addiction, error)
	GetAddiction(ctx context.Context, id uuid.UUID) (*models.Addiction, error)
	// CreateAddiction returns ErrDuplicate on a taken name.
	CreateAddiction(ctx context.Context, addiction *models.Addiction) error
	// InsertAddictionsIgnoringConflicts inserts the rows whose name is not
	// taken and leaves existing rows untouched.
	InsertAddictionsIgnoringConflicts(ctx context.Context, addictions []models.Addiction) (int64, error)

	// CreateUserAddiction returns ErrDuplicate when the pair is already linked.
	CreateUserAddiction(ctx context.Context, ua *models.UserAddiction) error
	GetUserAddiction(ctx context.Context, id uuid.UUID) (*models.UserAddiction, error)
	ListUserAddictions(ctx context.Context, userID uuid.UUID) ([]models.UserAddiction, error)

	CreateSobrietyLog(ctx context.Context, log *models.SobrietyLog) error
	ListSobrietyLogs(ctx context.Context, userAddictionID uuid.UUID) ([]models.SobrietyLog, error)

	// CreateCravingLog and CreateMoodLog return ErrNotFound when a referenced
	// user or user addiction is missing. Listings are newest logged_at first.
	CreateCravingLog(ctx context.Context, log *models.CravingLog) error
	ListCravingLogs(ctx context.Context, userID uuid.UUID) ([]models.CravingLog, error)
	CreateMoodLog(ctx context.Context, log *models.MoodLog) error
	ListMoodLogs(ctx context.Context, userID uuid.UUID) ([]models.MoodLog, error)
}

// Store is the full persistence contract of the backend.
type Store interface {
	ReportStore
	FeedStore
	UserStore
	RecoveryStore

	Ping(ctx context.Context) error
	Close() error
}
