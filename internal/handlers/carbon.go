package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"carboncare/internal/insights"
	mw "carboncare/internal/middleware"
	"carboncare/internal/models"
	"carboncare/internal/survey"
	"carboncare/internal/trend"
)

type CarbonHandler struct {
	db   *sqlx.DB
	orch *insights.Orchestrator
}

func NewCarbonHandler(db *sqlx.DB, orch *insights.Orchestrator) *CarbonHandler {
	return &CarbonHandler{db: db, orch: orch}
}

const recordColumns = `id, user_id, body_type, sex, diet, how_often_shower, heating_energy_source,
	transport, vehicle_type, social_activity, monthly_grocery_bill, frequency_of_traveling_by_air,
	vehicle_monthly_distance_km, waste_bag_size, waste_bag_weekly_count, how_long_tv_pc_daily_hour,
	how_many_new_clothes_monthly, how_long_internet_daily_hour, energy_efficiency, recycling,
	cooking_with, carbon_emission, recorded_at`

const insertRecord = `INSERT INTO carbon_records (` + recordColumns + `) VALUES
	(:id, :user_id, :body_type, :sex, :diet, :how_often_shower, :heating_energy_source,
	:transport, :vehicle_type, :social_activity, :monthly_grocery_bill, :frequency_of_traveling_by_air,
	:vehicle_monthly_distance_km, :waste_bag_size, :waste_bag_weekly_count, :how_long_tv_pc_daily_hour,
	:how_many_new_clothes_monthly, :how_long_internet_daily_hour, :energy_efficiency, :recycling,
	:cooking_with, :carbon_emission, :recorded_at)`

type submitRequest struct {
	models.CarbonRecord
	// Optional precomputed emission; when absent the prediction service
	// (or the fallback estimator) supplies one.
	CarbonEmission *float64 `json:"carbonEmission"`
}

// Submit validates and persists a survey submission, obtaining the emission
// value and insight payload from the prediction service. A service failure
// degrades to the local fallback but still answers 201.
func (h *CarbonHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	rec := req.CarbonRecord
	rec.ID = uuid.NewString()
	rec.UserID = userID
	rec.RecordedAt = time.Now().UTC()
	rec.CarbonEmission = 0
	if req.CarbonEmission != nil {
		rec.CarbonEmission = *req.CarbonEmission
	}
	if err := survey.Validate(&rec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload any
	if req.CarbonEmission != nil {
		payload = h.orch.GetInsights(r.Context(), rec, nil).Insights
	} else {
		rec.CarbonEmission, payload = h.orch.PredictEmission(r.Context(), rec)
	}

	if _, err := h.db.NamedExecContext(r.Context(), insertRecord, rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"carbonData": rec,
		"insights":   payload,
	})
}

// List returns all of the user's submissions, newest first.
func (h *CarbonHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	records := []models.CarbonRecord{}
	err := h.db.SelectContext(r.Context(), &records,
		`SELECT `+recordColumns+` FROM carbon_records WHERE user_id=$1 ORDER BY recorded_at DESC`, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Latest returns the newest submission, the one immediately preceding it,
// the emission change between them and a fresh insight payload.
func (h *CarbonHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())

	var latest models.CarbonRecord
	err := h.db.GetContext(r.Context(), &latest,
		`SELECT `+recordColumns+` FROM carbon_records WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT 1`, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			writeError(w, http.StatusNotFound, "No carbon data found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	var previous *models.CarbonRecord
	var prev models.CarbonRecord
	err = h.db.GetContext(r.Context(), &prev,
		`SELECT `+recordColumns+` FROM carbon_records WHERE user_id=$1 AND recorded_at < $2 ORDER BY recorded_at DESC LIMIT 1`,
		userID, latest.RecordedAt)
	switch err {
	case nil:
		previous = &prev
	case sql.ErrNoRows:
		// first submission, nothing to compare against
	default:
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	result := h.orch.GetInsights(r.Context(), latest, previous)
	writeJSON(w, http.StatusOK, map[string]any{
		"latestData":       latest,
		"previousData":     previous,
		"changePercentage": result.ChangePercentage,
		"insights":         result.Insights,
	})
}

// Trend returns the user's monthly emission series for the dashboard chart.
func (h *CarbonHandler) Trend(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	records := []models.CarbonRecord{}
	err := h.db.SelectContext(r.Context(), &records,
		`SELECT `+recordColumns+` FROM carbon_records WHERE user_id=$1 ORDER BY recorded_at ASC`, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, trend.Monthly(records))
}
