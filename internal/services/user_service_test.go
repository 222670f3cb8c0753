package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/inmemory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newUserService() *UserService {
	return NewUserService(inmemory.New(), NewContentPolicy(), 24*time.Hour)
}

func TestUserService_CreateUser(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		FirebaseUID: "fb-1",
		Username:    "sober_sam",
		Intent:      "quit",
	})
	require.NoError(t, err)
	require.NotNil(t, user.Username)
	assert.Equal(t, "sober_sam", *user.Username)
	assert.NotNil(t, user.IntentReasons)
	assert.Nil(t, user.UsernameChangedAt)

	_, err = svc.CreateUser(ctx, &dto.CreateUserRequest{Username: "SOBER_SAM"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.CreateUser(ctx, &dto.CreateUserRequest{FirebaseUID: "fb-1"})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.CreateUser(ctx, &dto.CreateUserRequest{Username: "no spaces!"})
	assert.ErrorIs(t, err, ErrInvalidUsername)

	anon, err := svc.CreateUser(ctx, &dto.CreateUserRequest{Anonymous: true})
	require.NoError(t, err)
	assert.Nil(t, anon.Username)
	assert.Nil(t, anon.FirebaseUID)
}

func TestUserService_UsernameCooldown(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{Username: "first_name"})
	require.NoError(t, err)

	user, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{Username: ptr("second_name")})
	require.NoError(t, err)
	assert.Equal(t, "second_name", *user.Username)
	require.NotNil(t, user.UsernameChangedAt)

	clock = clock.Add(time.Hour)
	_, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{Username: ptr("third_name")})
	assert.ErrorIs(t, err, ErrUsernameCooldown)

	// resubmitting the current name is not a change
	_, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{Username: ptr("second_name"), Bio: ptr("hi")})
	require.NoError(t, err)

	clock = clock.Add(24 * time.Hour)
	user, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{Username: ptr("third_name")})
	require.NoError(t, err)
	assert.Equal(t, "third_name", *user.Username)
}

func TestUserService_UpdateProfileFields(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{})
	require.NoError(t, err)
	other, err := svc.CreateUser(ctx, &dto.CreateUserRequest{Username: "taken_name"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, other.ID, user.ID, &dto.UpdateProfileRequest{Bio: ptr("nope")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{Username: ptr("Taken_Name")})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{Country: ptr("Turkey")})
	assert.ErrorIs(t, err, ErrInvalidCountry)

	updated, err := svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileRequest{
		AvatarID:    ptr("fox"),
		AvatarColor: ptr("#ff8800"),
		Bio:         ptr("<i>one day</i> at a time"),
		Catchphrase: ptr("keep going"),
		Country:     ptr("tr"),
	})
	require.NoError(t, err)
	assert.Equal(t, "fox", updated.AvatarID)
	assert.Equal(t, "one day at a time", updated.Bio)
	assert.Equal(t, "TR", updated.Country)

	stored, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep going", stored.Catchphrase)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteUser(ctx, uuid.New(), user.ID), ErrForbidden)
	require.NoError(t, svc.DeleteUser(ctx, user.ID, user.ID))

	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, user.ID, user.ID), ErrUserNotFound)
}
