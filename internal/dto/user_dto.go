package dto

import "github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"

type CreateUserRequest struct {
	FirebaseUID   string   `json:"firebaseUid"`
	Username      string   `json:"username"`
	Anonymous     bool     `json:"anonymous"`
	Intent        string   `json:"intent"`
	IntentReasons []string `json:"intentReasons"`
}

// UpdateProfileRequest applies only the fields that are present.
type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	AvatarID    *string `json:"avatarId"`
	AvatarColor *string `json:"avatarColor"`
	AvatarURL   *string `json:"avatarUrl"`
	Bio         *string `json:"bio"`
	Catchphrase *string `json:"catchphrase"`
	Country     *string `json:"country"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}
