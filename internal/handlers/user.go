package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	mw "carboncare/internal/middleware"
	"carboncare/internal/models"
)

type UserHandler struct {
	db *sqlx.DB
}

func NewUserHandler(db *sqlx.DB) *UserHandler {
	return &UserHandler{db: db}
}

const userColumns = `id, name, email, password_hash, theme, units, notify_email, notify_monthly_report, notify_tips, created_at`

// GetMe returns the current user's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	var u models.User
	if err := h.db.Get(&u, `SELECT `+userColumns+` FROM users WHERE id=$1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, ToUserDTO(u))
}

var (
	themes = []string{"light", "dark", "system"}
	units  = []string{"metric", "imperial"}
)

// UpdateMe updates provided fields on the current user's profile and returns
// the updated profile.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	var body struct {
		Name        *string `json:"name"`
		Email       *string `json:"email"`
		Preferences *struct {
			Theme *string `json:"theme"`
			Units *string `json:"units"`
		} `json:"preferences"`
		Notifications *struct {
			Email         *bool `json:"email"`
			MonthlyReport *bool `json:"monthlyReport"`
			Tips          *bool `json:"tips"`
		} `json:"notifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	// Build dynamic update
	setClauses := []string{}
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		setClauses = append(setClauses, fmt.Sprintf("%s=$%d", col, len(args)))
	}

	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name must not be empty")
			return
		}
		add("name", name)
	}
	if body.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*body.Email))
		if email == "" {
			writeError(w, http.StatusBadRequest, "email must not be empty")
			return
		}
		add("email", email)
	}
	if body.Preferences != nil {
		if body.Preferences.Theme != nil {
			if !contains(themes, *body.Preferences.Theme) {
				writeError(w, http.StatusBadRequest, "invalid theme")
				return
			}
			add("theme", *body.Preferences.Theme)
		}
		if body.Preferences.Units != nil {
			if !contains(units, *body.Preferences.Units) {
				writeError(w, http.StatusBadRequest, "invalid units")
				return
			}
			add("units", *body.Preferences.Units)
		}
	}
	if body.Notifications != nil {
		if body.Notifications.Email != nil {
			add("notify_email", *body.Notifications.Email)
		}
		if body.Notifications.MonthlyReport != nil {
			add("notify_monthly_report", *body.Notifications.MonthlyReport)
		}
		if body.Notifications.Tips != nil {
			add("notify_tips", *body.Notifications.Tips)
		}
	}

	if len(setClauses) > 0 {
		args = append(args, userID)
		query := fmt.Sprintf("UPDATE users SET %s WHERE id=$%d",
			strings.Join(setClauses, ", "), len(args))
		if _, err := h.db.Exec(query, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				writeError(w, http.StatusBadRequest, "User already exists")
				return
			}
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	var u models.User
	if err := h.db.Get(&u, `SELECT `+userColumns+` FROM users WHERE id=$1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, ToUserDTO(u))
}

func contains(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
