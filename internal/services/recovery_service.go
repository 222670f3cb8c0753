package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

const MaxAddictionNameLength = 100

var (
	ErrAddictionNotFound     = errors.New("addiction not found")
	ErrAddictionExists       = errors.New("addiction already exists")
	ErrInvalidAddictionName  = errors.New("addiction name is required")
	ErrAlreadyLinked         = errors.New("addiction already linked to user")
	ErrUserAddictionNotFound = errors.New("user addiction not found")
	ErrInvalidSobrietyStatus = errors.New("status must be clean or slip")
	ErrInvalidDate           = errors.New("date must be YYYY-MM-DD")
	ErrInvalidIntensity      = errors.New("intensity must be between 1 and 10")
	ErrInvalidMood           = errors.New("mood must be between 1 and 5")
	ErrInvalidLoggedAt       = errors.New("loggedAt must be an RFC 3339 timestamp")
)

type RecoveryService struct {
	store storage.RecoveryStore
	now   func() time.Time
}

func NewRecoveryService(store storage.RecoveryStore) *RecoveryService {
	return &RecoveryService{store: store, now: time.Now}
}

func (s *RecoveryService) ListAddictions(ctx context.Context) ([]models.Addiction, error) {
	addictions, err := s.store.ListAddictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addictions: %w", err)
	}
	return addictions, nil
}

// CreateCustomAddiction adds a user defined addiction to the catalogue.
func (s *RecoveryService) CreateCustomAddiction(ctx context.Context, req *dto.CreateAddictionRequest) (*models.Addiction, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || runeLen(name) > MaxAddictionNameLength {
		return nil, ErrInvalidAddictionName
	}

	addiction := models.Addiction{
		ID:       uuid.New(),
		Name:     name,
		Icon:     strings.TrimSpace(req.Icon),
		IsCustom: true,
	}
	if err := s.store.CreateAddiction(ctx, &addiction); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrAddictionExists
		}
		return nil, fmt.Errorf("failed to create addiction: %w", err)
	}
	return &addiction, nil
}

func (s *RecoveryService) LinkAddiction(ctx context.Context, actorID, userID uuid.UUID, req *dto.LinkAddictionRequest) (*models.UserAddiction, error) {
	if actorID != userID {
		return nil, ErrForbidden
	}
	start, err := s.parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	addiction, err := s.store.GetAddiction(ctx, req.AddictionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrAddictionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get addiction: %w", err)
	}

	ua := models.UserAddiction{
		ID:          uuid.New(),
		UserID:      userID,
		AddictionID: addiction.ID,
		StartDate:   start,
		Active:      true,
	}
	if err := s.store.CreateUserAddiction(ctx, &ua); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicate):
			return nil, ErrAlreadyLinked
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to link addiction: %w", err)
	}
	ua.Addiction = addiction
	return &ua, nil
}

func (s *RecoveryService) ListUserAddictions(ctx context.Context, userID uuid.UUID) ([]models.UserAddiction, error) {
	links, err := s.store.ListUserAddictions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user addictions: %w", err)
	}
	return links, nil
}

// LogSobriety records a clean or slip day. A slip leaves start_date as is;
// streaks are derived from the log history.
func (s *RecoveryService) LogSobriety(ctx context.Context, actorID, userAddictionID uuid.UUID, req *dto.SobrietyLogRequest) (*models.SobrietyLog, error) {
	if req.Status != models.SobrietyClean && req.Status != models.SobrietySlip {
		return nil, ErrInvalidSobrietyStatus
	}
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedUserAddiction(ctx, actorID, userAddictionID); err != nil {
		return nil, err
	}

	log := models.SobrietyLog{
		ID:              uuid.New(),
		UserAddictionID: userAddictionID,
		Date:            date,
		Status:          req.Status,
		Reason:          strings.TrimSpace(req.Reason),
		Note:            strings.TrimSpace(req.Note),
	}
	if err := s.store.CreateSobrietyLog(ctx, &log); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserAddictionNotFound
		}
		return nil, fmt.Errorf("failed to create sobriety log: %w", err)
	}
	return &log, nil
}

// ListSobrietyLogs returns the owner's logs, newest date first.
func (s *RecoveryService) ListSobrietyLogs(ctx context.Context, actorID, userAddictionID uuid.UUID) ([]models.SobrietyLog, error) {
	if _, err := s.ownedUserAddiction(ctx, actorID, userAddictionID); err != nil {
		return nil, err
	}
	logs, err := s.store.ListSobrietyLogs(ctx, userAddictionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sobriety logs: %w", err)
	}
	return logs, nil
}

// LogCraving records a craving for the caller. A linked user addiction must
// belong to the caller too.
func (s *RecoveryService) LogCraving(ctx context.Context, actorID, userID uuid.UUID, req *dto.CravingLogRequest) (*models.CravingLog, error) {
	if actorID != userID {
		return nil, ErrForbidden
	}
	if req.Intensity < models.MinCravingIntensity || req.Intensity > models.MaxCravingIntensity {
		return nil, ErrInvalidIntensity
	}
	loggedAt, err := s.parseLoggedAt(req.LoggedAt)
	if err != nil {
		return nil, err
	}
	if req.UserAddictionID != nil {
		if _, err := s.ownedUserAddiction(ctx, actorID, *req.UserAddictionID); err != nil {
			return nil, err
		}
	}

	log := models.CravingLog{
		ID:              uuid.New(),
		UserID:          userID,
		UserAddictionID: req.UserAddictionID,
		Intensity:       req.Intensity,
		Trigger:         strings.TrimSpace(req.Trigger),
		Note:            strings.TrimSpace(req.Note),
		LoggedAt:        loggedAt,
	}
	if err := s.store.CreateCravingLog(ctx, &log); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create craving log: %w", err)
	}
	return &log, nil
}

func (s *RecoveryService) ListCravingLogs(ctx context.Context, actorID, userID uuid.UUID) ([]models.CravingLog, error) {
	if actorID != userID {
		return nil, ErrForbidden
	}
	logs, err := s.store.ListCravingLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list craving logs: %w", err)
	}
	return logs, nil
}

func (s *RecoveryService) LogMood(ctx context.Context, actorID, userID uuid.UUID, req *dto.MoodLogRequest) (*models.MoodLog, error) {
	if actorID != userID {
		return nil, ErrForbidden
	}
	if req.Mood < models.MinMood || req.Mood > models.MaxMood {
		return nil, ErrInvalidMood
	}
	loggedAt, err := s.parseLoggedAt(req.LoggedAt)
	if err != nil {
		return nil, err
	}

	log := models.MoodLog{
		ID:       uuid.New(),
		UserID:   userID,
		Mood:     req.Mood,
		Note:     strings.TrimSpace(req.Note),
		LoggedAt: loggedAt,
	}
	if err := s.store.CreateMoodLog(ctx, &log); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create mood log: %w", err)
	}
	return &log, nil
}

func (s *RecoveryService) ListMoodLogs(ctx context.Context, actorID, userID uuid.UUID) ([]models.MoodLog, error) {
	if actorID != userID {
		return nil, ErrForbidden
	}
	logs, err := s.store.ListMoodLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood logs: %w", err)
	}
	return logs, nil
}

func (s *RecoveryService) ownedUserAddiction(ctx context.Context, actorID, id uuid.UUID) (*models.UserAddiction, error) {
	ua, err := s.store.GetUserAddiction(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserAddictionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user addiction: %w", err)
	}
	if ua.UserID != actorID {
		return nil, ErrForbidden
	}
	return ua, nil
}

func (s *RecoveryService) parseDate(value string) (time.Time, error) {
	if value == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func (s *RecoveryService) parseLoggedAt(value string) (time.Time, error) {
	if value == "" {
		return s.now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidLoggedAt
	}
	return t.UTC(), nil
}
