package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store implements storage.Store on a PostgreSQL pool. Referential integrity
// and cascades are enforced by the schema in internal/migrations.
type Store struct {
	db *gorm.DB
}

var _ storage.Store = (*Store)(nil)

// New wraps an open pool. The store takes ownership and releases it on Close.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the pool for the log handler and cleanup job.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(_ context.Context) error {
	return database.Ping(s.db)
}

func (s *Store) Close() error {
	database.Close(s.db)
	return nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", storage.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
	default:
		return err
	}
}

// parseID treats malformed ids as unknown rows instead of letting PostgreSQL
// reject the uuid cast.
func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, storage.ErrNotFound
	}
	return uid, nil
}
