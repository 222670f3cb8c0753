package inmemory

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ensureID(&user.ID)
	if err := s.checkUserUniqueLocked(user); err != nil {
		return err
	}
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *Store) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, storage.ErrNotFound
	}
	user := *u
	return &user, nil
}

func (s *Store) UsernameTaken(_ context.Context, username string, exceptID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == exceptID || u.DeletedAt.Valid || u.Username == nil {
			continue
		}
		if strings.EqualFold(*u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok || existing.DeletedAt.Valid {
		return storage.ErrNotFound
	}
	if err := s.checkUserUniqueLocked(user); err != nil {
		return err
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = s.now()

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}

	for uaID, ua := range s.userAddictions {
		if ua.UserID == id {
			s.deleteUserAddictionLocked(uaID)
		}
	}
	for postID, p := range s.posts {
		if p.UserID == id {
			s.deletePostLocked(postID)
		}
	}
	for commentID, c := range s.comments {
		if c.UserID == id {
			s.deleteCommentLocked(commentID)
		}
	}
	for rid, r := range s.reactions {
		if r.UserID == id {
			delete(s.reactions, rid)
		}
	}
	for rid, r := range s.commentReactions {
		if r.UserID == id {
			delete(s.commentReactions, rid)
		}
	}
	for lid, l := range s.cravingLogs {
		if l.UserID == id {
			delete(s.cravingLogs, lid)
		}
	}
	for lid, l := range s.moodLogs {
		if l.UserID == id {
			delete(s.moodLogs, lid)
		}
	}
	delete(s.users, id)
	return nil
}

// checkUserUniqueLocked mirrors the firebase_uid unique constraint and the
// partial unique index on LOWER(username).
func (s *Store) checkUserUniqueLocked(user *models.User) error {
	for _, u := range s.users {
		if u.ID == user.ID {
			continue
		}
		if user.FirebaseUID != nil && u.FirebaseUID != nil && *u.FirebaseUID == *user.FirebaseUID {
			return storage.ErrDuplicate
		}
		if user.Username != nil && u.Username != nil && !u.DeletedAt.Valid &&
			strings.EqualFold(*u.Username, *user.Username) {
			return storage.ErrDuplicate
		}
	}
	return nil
}
