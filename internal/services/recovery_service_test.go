package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/inmemory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryService_CustomAddictions(t *testing.T) {
	svc := NewRecoveryService(inmemory.New())
	ctx := context.Background()

	addiction, err := svc.CreateCustomAddiction(ctx, &dto.CreateAddictionRequest{Name: "  Doomscrolling ", Icon: "📱"})
	require.NoError(t, err)
	assert.Equal(t, "Doomscrolling", addiction.Name)
	assert.True(t, addiction.IsCustom)

	_, err = svc.CreateCustomAddiction(ctx, &dto.CreateAddictionRequest{Name: "Doomscrolling"})
	assert.ErrorIs(t, err, ErrAddictionExists)

	_, err = svc.CreateCustomAddiction(ctx, &dto.CreateAddictionRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidAddictionName)

	list, err := svc.ListAddictions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecoveryService_LinkAndLog(t *testing.T) {
	store := inmemory.New()
	svc := NewRecoveryService(store)
	svc.now = func() time.Time { return time.Date(2026, 5, 10, 22, 30, 0, 0, time.UTC) }
	ctx := context.Background()

	user := &models.User{}
	require.NoError(t, store.CreateUser(ctx, user))
	other := &models.User{}
	require.NoError(t, store.CreateUser(ctx, other))
	alcohol := &models.Addiction{Name: "Alcohol", Icon: "🍺"}
	require.NoError(t, store.CreateAddiction(ctx, alcohol))

	_, err := svc.LinkAddiction(ctx, other.ID, user.ID, &dto.LinkAddictionRequest{AddictionID: alcohol.ID})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.LinkAddiction(ctx, user.ID, user.ID, &dto.LinkAddictionRequest{AddictionID: uuid.New()})
	assert.ErrorIs(t, err, ErrAddictionNotFound)

	_, err = svc.LinkAddiction(ctx, user.ID, user.ID, &dto.LinkAddictionRequest{AddictionID: alcohol.ID, StartDate: "10/05/2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	ua, err := svc.LinkAddiction(ctx, user.ID, user.ID, &dto.LinkAddictionRequest{AddictionID: alcohol.ID})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), ua.StartDate)

	_, err = svc.LinkAddiction(ctx, user.ID, user.ID, &dto.LinkAddictionRequest{AddictionID: alcohol.ID})
	assert.ErrorIs(t, err, ErrAlreadyLinked)

	links, err := svc.ListUserAddictions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].Addiction)
	assert.Equal(t, "Alcohol", links[0].Addiction.Name)

	_, err = svc.LogSobriety(ctx, user.ID, ua.ID, &dto.SobrietyLogRequest{Status: "relapse"})
	assert.ErrorIs(t, err, ErrInvalidSobrietyStatus)

	_, err = svc.LogSobriety(ctx, other.ID, ua.ID, &dto.SobrietyLogRequest{Status: models.SobrietyClean})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.LogSobriety(ctx, user.ID, uuid.New(), &dto.SobrietyLogRequest{Status: models.SobrietyClean})
	assert.ErrorIs(t, err, ErrUserAddictionNotFound)

	_, err = svc.LogSobriety(ctx, user.ID, ua.ID, &dto.SobrietyLogRequest{Date: "2026-05-08", Status: models.SobrietyClean})
	require.NoError(t, err)
	_, err = svc.LogSobriety(ctx, user.ID, ua.ID, &dto.SobrietyLogRequest{Date: "2026-05-09", Status: models.SobrietySlip, Reason: "stress"})
	require.NoError(t, err)

	logs, err := svc.ListSobrietyLogs(ctx, user.ID, ua.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.SobrietySlip, logs[0].Status)
	assert.Equal(t, "stress", logs[0].Reason)

	// a slip keeps the original start date
	stored, err := store.GetUserAddiction(ctx, ua.ID)
	require.NoError(t, err)
	assert.Equal(t, ua.StartDate, stored.StartDate)

	_, err = svc.ListSobrietyLogs(ctx, other.ID, ua.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecoveryService_JournalLogs(t *testing.T) {
	store := inmemory.New()
	svc := NewRecoveryService(store)
	now := time.Date(2026, 5, 10, 22, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	user := &models.User{}
	require.NoError(t, store.CreateUser(ctx, user))
	other := &models.User{}
	require.NoError(t, store.CreateUser(ctx, other))
	nicotine := &models.Addiction{Name: "Nicotine"}
	require.NoError(t, store.CreateAddiction(ctx, nicotine))
	ua, err := svc.LinkAddiction(ctx, user.ID, user.ID, &dto.LinkAddictionRequest{AddictionID: nicotine.ID})
	require.NoError(t, err)
	othersUA, err := svc.LinkAddiction(ctx, other.ID, other.ID, &dto.LinkAddictionRequest{AddictionID: nicotine.ID})
	require.NoError(t, err)

	for _, intensity := range []int{0, 11} {
		_, err = svc.LogCraving(ctx, user.ID, user.ID, &dto.CravingLogRequest{Intensity: intensity})
		assert.ErrorIs(t, err, ErrInvalidIntensity)
	}
	_, err = svc.LogCraving(ctx, other.ID, user.ID, &dto.CravingLogRequest{Intensity: 5})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.LogCraving(ctx, user.ID, user.ID, &dto.CravingLogRequest{Intensity: 5, UserAddictionID: &othersUA.ID})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.LogCraving(ctx, user.ID, user.ID, &dto.CravingLogRequest{Intensity: 5, LoggedAt: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidLoggedAt)

	older, err := svc.LogCraving(ctx, user.ID, user.ID, &dto.CravingLogRequest{
		Intensity:       7,
		UserAddictionID: &ua.ID,
		Trigger:         " after dinner ",
		LoggedAt:        "2026-05-09T20:00:00+02:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "after dinner", older.Trigger)
	assert.Equal(t, time.Date(2026, 5, 9, 18, 0, 0, 0, time.UTC), older.LoggedAt)

	latest, err := svc.LogCraving(ctx, user.ID, user.ID, &dto.CravingLogRequest{Intensity: 3})
	require.NoError(t, err)
	assert.Equal(t, now, latest.LoggedAt)

	cravings, err := svc.ListCravingLogs(ctx, user.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, cravings, 2)
	assert.Equal(t, latest.ID, cravings[0].ID)
	require.NotNil(t, cravings[1].UserAddictionID)
	assert.Equal(t, ua.ID, *cravings[1].UserAddictionID)

	_, err = svc.ListCravingLogs(ctx, other.ID, user.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	for _, mood := range []int{0, 6} {
		_, err = svc.LogMood(ctx, user.ID, user.ID, &dto.MoodLogRequest{Mood: mood})
		assert.ErrorIs(t, err, ErrInvalidMood)
	}
	_, err = svc.LogMood(ctx, other.ID, user.ID, &dto.MoodLogRequest{Mood: 3})
	assert.ErrorIs(t, err, ErrForbidden)

	mood, err := svc.LogMood(ctx, user.ID, user.ID, &dto.MoodLogRequest{Mood: 4, Note: " calm "})
	require.NoError(t, err)
	assert.Equal(t, "calm", mood.Note)

	moods, err := svc.ListMoodLogs(ctx, user.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, 4, moods[0].Mood)

	ghost := uuid.New()
	_, err = svc.LogMood(ctx, ghost, ghost, &dto.MoodLogRequest{Mood: 2})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
