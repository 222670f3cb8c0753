package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

// Store is a process-local implementation of storage.Store. It enforces the
// same unique constraints and delete cascades as the PostgreSQL schema.
type Store struct {
	mu   sync.RWMutex
	last time.Time

	users            map[uuid.UUID]*models.User
	addictions       map[uuid.UUID]*models.Addiction
	userAddictions   map[uuid.UUID]*models.UserAddiction
	sobrietyLogs     map[uuid.UUID]*models.SobrietyLog
	cravingLogs      map[uuid.UUID]*models.CravingLog
	moodLogs         map[uuid.UUID]*models.MoodLog
	posts            map[uuid.UUID]*models.Post
	comments         map[uuid.UUID]*models.Comment
	reactions        map[uuid.UUID]*models.Reaction
	commentReactions map[uuid.UUID]*models.CommentReaction
	reports          map[uuid.UUID]*models.Report
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:            make(map[uuid.UUID]*models.User),
		addictions:       make(map[uuid.UUID]*models.Addiction),
		userAddictions:   make(map[uuid.UUID]*models.UserAddiction),
		sobrietyLogs:     make(map[uuid.UUID]*models.SobrietyLog),
		cravingLogs:      make(map[uuid.UUID]*models.CravingLog),
		moodLogs:         make(map[uuid.UUID]*models.MoodLog),
		posts:            make(map[uuid.UUID]*models.Post),
		comments:         make(map[uuid.UUID]*models.Comment),
		reactions:        make(map[uuid.UUID]*models.Reaction),
		commentReactions: make(map[uuid.UUID]*models.CommentReaction),
		reports:          make(map[uuid.UUID]*models.Report),
	}
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }

// now returns a strictly increasing timestamp so newest-first ordering is
// deterministic. Callers must hold the write lock.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
