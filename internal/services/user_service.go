package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

const (
	MaxBioLength         = 500
	MaxCatchphraseLength = 140
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrInvalidUsername  = errors.New("username must be 3-30 letters, digits or underscores")
	ErrInvalidCountry   = errors.New("country must be a two letter code")
	ErrUsernameCooldown = errors.New("username was changed too recently")
	ErrForbidden        = errors.New("forbidden")
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
	countryPattern  = regexp.MustCompile(`^[A-Z]{2}$`)
)

type UserService struct {
	store    storage.UserStore
	content  *ContentPolicy
	cooldown time.Duration
	now      func() time.Time
}

func NewUserService(store storage.UserStore, content *ContentPolicy, cooldown time.Duration) *UserService {
	return &UserService{store: store, content: content, cooldown: cooldown, now: time.Now}
}

func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	user := models.User{
		ID:            uuid.New(),
		Anonymous:     req.Anonymous,
		Intent:        strings.TrimSpace(req.Intent),
		IntentReasons: req.IntentReasons,
	}
	if user.IntentReasons == nil {
		user.IntentReasons = []string{}
	}
	if uid := strings.TrimSpace(req.FirebaseUID); uid != "" {
		user.FirebaseUID = &uid
	}

	if name := strings.TrimSpace(req.Username); name != "" {
		if err := s.checkUsername(ctx, name, uuid.Nil); err != nil {
			return nil, err
		}
		user.Username = &name
	}

	if err := s.store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the fields present in req. Only the user themself
// may update a profile. A username change inside the cooldown window after
// the previous change is rejected.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	if actorID != id {
		return nil, ErrForbidden
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if user.Username == nil || *user.Username != name {
			if user.UsernameChangedAt != nil && s.now().Sub(*user.UsernameChangedAt) < s.cooldown {
				return nil, ErrUsernameCooldown
			}
			if err := s.checkUsername(ctx, name, user.ID); err != nil {
				return nil, err
			}
			changed := s.now().UTC()
			user.Username = &name
			user.UsernameChangedAt = &changed
		}
	}
	if req.AvatarID != nil {
		user.AvatarID = strings.TrimSpace(*req.AvatarID)
	}
	if req.AvatarColor != nil {
		user.AvatarColor = strings.TrimSpace(*req.AvatarColor)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}
	if req.Bio != nil {
		bio := s.content.Sanitize(*req.Bio)
		if runeLen(bio) > MaxBioLength {
			return nil, ErrContentTooLong
		}
		user.Bio = bio
	}
	if req.Catchphrase != nil {
		phrase := s.content.Sanitize(*req.Catchphrase)
		if runeLen(phrase) > MaxCatchphraseLength {
			return nil, ErrContentTooLong
		}
		user.Catchphrase = phrase
	}
	if req.Country != nil {
		country := strings.ToUpper(strings.TrimSpace(*req.Country))
		if country != "" && !countryPattern.MatchString(country) {
			return nil, ErrInvalidCountry
		}
		user.Country = country
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicate):
			return nil, ErrUsernameTaken
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the account and everything owned by it.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID != id {
		return ErrForbidden
	}
	if err := s.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) checkUsername(ctx context.Context, name string, self uuid.UUID) error {
	if !usernamePattern.MatchString(name) {
		return ErrInvalidUsername
	}
	taken, err := s.store.UsernameTaken(ctx, name, self)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}
	return nil
}
