package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"carboncare/internal/models"
)

type PreferencesDTO struct {
	Theme string `json:"theme"`
	Units string `json:"units"`
}

type NotificationsDTO struct {
	Email         bool `json:"email"`
	MonthlyReport bool `json:"monthlyReport"`
	Tips          bool `json:"tips"`
}

// UserDTO is the client-facing profile. The password hash never leaves the
// handlers package.
type UserDTO struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Preferences   PreferencesDTO   `json:"preferences"`
	Notifications NotificationsDTO `json:"notifications"`
	CreatedAt     string           `json:"created_at"`
}

func ToUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Preferences: PreferencesDTO{
			Theme: u.Theme,
			Units: u.Units,
		},
		Notifications: NotificationsDTO{
			Email:         u.NotifyEmail,
			MonthlyReport: u.NotifyMonthlyReport,
			Tips:          u.NotifyTips,
		},
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
