package dto

import (
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/google/uuid"
)

type CreateAddictionRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type LinkAddictionRequest struct {
	AddictionID uuid.UUID `json:"addictionId"`
	StartDate   string    `json:"startDate"` // YYYY-MM-DD, defaults to today
}

type SobrietyLogRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD, defaults to today
	Status string `json:"status"`
	Reason string `json:"reason"`
	Note   string `json:"note"`
}

type CravingLogRequest struct {
	UserAddictionID *uuid.UUID `json:"userAddictionId"`
	Intensity       int        `json:"intensity"` // 1-10
	Trigger         string     `json:"trigger"`
	Note            string     `json:"note"`
	LoggedAt        string     `json:"loggedAt"` // RFC 3339, defaults to now
}

type MoodLogRequest struct {
	Mood     int    `json:"mood"` // 1-5
	Note     string `json:"note"`
	LoggedAt string `json:"loggedAt"`
}

type AddictionsResponse struct {
	Success    bool               `json:"success"`
	Addictions []models.Addiction `json:"addictions"`
}

type UserAddictionsResponse struct {
	Success        bool                   `json:"success"`
	UserAddictions []models.UserAddiction `json:"user_addictions"`
}

type SobrietyLogsResponse struct {
	Success bool                 `json:"success"`
	Logs    []models.SobrietyLog `json:"logs"`
}

type CravingLogsResponse struct {
	Success bool                `json:"success"`
	Logs    []models.CravingLog `json:"logs"`
}

type MoodLogsResponse struct {
	Success bool             `json:"success"`
	Logs    []models.MoodLog `json:"logs"`
}
