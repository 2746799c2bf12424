package events

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c Consumer) {
	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(c))
		er.Post("/", createEventHandler(c))

		// Vista derivada del día actual
		er.Get("/today", todayEventsHandler(c))
		er.Delete("/today", clearTodayEventsHandler(c))

		er.Get("/{eventID}", getEventHandler(c))
		er.Patch("/{eventID}", updateEventHandler(c))
		er.Delete("/{eventID}", deleteEventHandler(c))
	})
}

// createEventRequest es el cuerpo para registrar un evento nuevo.
type createEventRequest struct {
	Text      string    `json:"text"`
	Type      EventType `json:"type" enums:"event,interview"` // opcional, default "event"
	AudioURL  string    `json:"audioUrl"`
	AudioText string    `json:"audioText"`
}

// updateEventRequest usa punteros para PATCH real: nil = no tocar.
type updateEventRequest struct {
	Text             *string        `json:"text"`
	AudioURL         *string        `json:"audioUrl"`
	AudioText        *string        `json:"audioText"`
	InterviewHistory *[]InterviewQA `json:"interviewHistory"`
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Devuelve todos los eventos en orden de inserción. Con `date` filtra por día (YYYY-MM-DD).
// @Tags events
// @Produce json
// @Param date query string false "Día YYYY-MM-DD"
// @Success 200 {array} Event
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Router /events [get]
func listEventsHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date == "" {
			writeJSON(w, http.StatusOK, c.Events())
			return
		}
		if !ValidDate(date) {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, c.GetEventsByDate(date))
	}
}

// createEventHandler godoc
// @Summary Crear evento
// @Description Registra un evento con la hora actual y lo asigna al día local de hoy. `text` no puede estar vacío.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Datos del evento"
// @Success 201 {object} Event
// @Failure 400 {string} string "invalid json / text required / unknown type"
// @Router /events [post]
func createEventHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// La validación de texto vive acá, no en el store.
		text := strings.TrimSpace(req.Text)
		if text == "" {
			http.Error(w, "text required", http.StatusBadRequest)
			return
		}
		if req.Type != "" && !req.Type.Valid() {
			http.Error(w, "unknown type", http.StatusBadRequest)
			return
		}

		e := c.AddEvent(CreateInput{
			Text:      text,
			Type:      req.Type,
			AudioURL:  strings.TrimSpace(req.AudioURL),
			AudioText: strings.TrimSpace(req.AudioText),
		})

		writeJSON(w, http.StatusCreated, e)
	}
}

// todayEventsHandler godoc
// @Summary Eventos de hoy
// @Tags events
// @Produce json
// @Success 200 {array} Event
// @Router /events/today [get]
func todayEventsHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.TodayEvents())
	}
}

// clearTodayEventsHandler godoc
// @Summary Borrar eventos de hoy
// @Description Elimina todos los eventos cuyo día es hoy. Los de otros días no se tocan.
// @Tags events
// @Success 204
// @Router /events/today [delete]
func clearTodayEventsHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		c.ClearTodayEvents()
		w.WriteHeader(http.StatusNoContent)
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} Event
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func getEventHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := c.GetEvent(chi.URLParam(r, "eventID"))
		if !ok {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// updateEventHandler godoc
// @Summary Editar evento
// @Description Aplica un patch parcial. `date`, `timestamp` y `createdAt` no cambian.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a cambiar"
// @Success 200 {object} Event
// @Failure 400 {string} string "invalid json / text cannot be empty"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [patch]
func updateEventHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateEventRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Text != nil {
			t := strings.TrimSpace(*req.Text)
			if t == "" {
				http.Error(w, "text cannot be empty", http.StatusBadRequest)
				return
			}
			req.Text = &t
		}

		updated, ok := c.UpdateEvent(chi.URLParam(r, "eventID"), UpdateInput{
			Text:             req.Text,
			AudioURL:         req.AudioURL,
			AudioText:        req.AudioText,
			InterviewHistory: req.InterviewHistory,
		})
		if !ok {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteEventHandler godoc
// @Summary Eliminar evento
// @Tags events
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(c Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.DeleteEvent(chi.URLParam(r, "eventID")) {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado en cada módulo a propósito; si aparece en más lados, extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
