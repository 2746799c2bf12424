package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"echo-journal/internal/domain/diaries"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/settings", getSettingsHandler(svc))
	r.Patch("/settings", updateSettingsHandler(svc))
	r.Delete("/settings", resetSettingsHandler(svc))
}

type notificationsPatch struct {
	DailyReminder *bool   `json:"dailyReminder"`
	ReminderTime  *string `json:"reminderTime"`
}

type updateSettingsRequest struct {
	APIKey            *string             `json:"apiKey"`
	Theme             *Theme              `json:"theme" enums:"dark,light,system"`
	Language          *string             `json:"language"`
	SpeechLanguage    *string             `json:"speechLanguage"`
	AutoSave          *bool               `json:"autoSave"`
	DefaultDiaryStyle *diaries.Style      `json:"defaultDiaryStyle" enums:"warm,poetic,simple,reflective"`
	Notifications     *notificationsPatch `json:"notifications"`
}

// getSettingsHandler godoc
// @Summary Obtener configuración
// @Tags settings
// @Produce json
// @Success 200 {object} UserSettings
// @Router /settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Get(r.Context()))
	}
}

// updateSettingsHandler godoc
// @Summary Editar configuración
// @Description Merge parcial sobre la configuración actual. `reminderTime` es HH:MM.
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body updateSettingsRequest true "Campos a cambiar"
// @Success 200 {object} UserSettings
// @Failure 400 {string} string "invalid json / invalid settings"
// @Router /settings [patch]
func updateSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateSettingsRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			APIKey:            req.APIKey,
			Theme:             req.Theme,
			Language:          req.Language,
			SpeechLanguage:    req.SpeechLanguage,
			AutoSave:          req.AutoSave,
			DefaultDiaryStyle: req.DefaultDiaryStyle,
		}
		if req.Notifications != nil {
			in.DailyReminder = req.Notifications.DailyReminder
			in.ReminderTime = req.Notifications.ReminderTime
		}

		updated, err := svc.Update(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid settings", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// resetSettingsHandler godoc
// @Summary Restablecer configuración
// @Tags settings
// @Produce json
// @Success 200 {object} UserSettings
// @Router /settings [delete]
func resetSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Reset(r.Context()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
