package diaries

import (
	"encoding/json"
	"net/http"
	"strings"

	"echo-journal/internal/domain/events"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, s *Store) {
	r.Route("/diaries", func(dr chi.Router) {
		dr.Get("/", listDiariesHandler(s))
		dr.Post("/", createDiaryHandler(s))

		dr.Get("/{diaryID}", getDiaryHandler(s))
		dr.Patch("/{diaryID}", updateDiaryHandler(s))
		dr.Delete("/{diaryID}", deleteDiaryHandler(s))
	})
}

type createDiaryRequest struct {
	Title            string               `json:"title"`
	Content          string               `json:"content"`
	Tags             []string             `json:"tags"`
	Mood             Mood                 `json:"mood" enums:"happy,sad,calm,excited,anxious,neutral"`
	EventIDs         []string             `json:"eventIds"`
	InterviewHistory []events.InterviewQA `json:"interviewHistory"`
	Style            Style                `json:"style" enums:"warm,poetic,simple,reflective"`
	Date             string               `json:"date"` // YYYY-MM-DD opcional
}

type updateDiaryRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
	Mood    *Mood     `json:"mood"`
}

// listDiariesHandler godoc
// @Summary Listar diarios
// @Tags diaries
// @Produce json
// @Param date query string false "Día YYYY-MM-DD"
// @Success 200 {array} Diary
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Router /diaries [get]
func listDiariesHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date == "" {
			writeJSON(w, http.StatusOK, s.Diaries())
			return
		}
		if !events.ValidDate(date) {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, s.GetDiariesByDate(date))
	}
}

// createDiaryHandler godoc
// @Summary Crear diario
// @Tags diaries
// @Accept json
// @Produce json
// @Param payload body createDiaryRequest true "Datos del diario"
// @Success 201 {object} Diary
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Router /diaries [post]
func createDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		title := strings.TrimSpace(req.Title)
		content := strings.TrimSpace(req.Content)
		if title == "" || content == "" {
			http.Error(w, "title and content required", http.StatusBadRequest)
			return
		}
		if req.Mood != "" && !req.Mood.Valid() {
			http.Error(w, "unknown mood", http.StatusBadRequest)
			return
		}
		if req.Style != "" && !req.Style.Valid() {
			http.Error(w, "unknown style", http.StatusBadRequest)
			return
		}
		date := strings.TrimSpace(req.Date)
		if date != "" && !events.ValidDate(date) {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		d := s.AddDiary(CreateInput{
			Title:            title,
			Content:          content,
			Tags:             req.Tags,
			Mood:             req.Mood,
			EventIDs:         req.EventIDs,
			InterviewHistory: req.InterviewHistory,
			Style:            req.Style,
			Date:             date,
		})

		writeJSON(w, http.StatusCreated, d)
	}
}

// getDiaryHandler godoc
// @Summary Obtener diario
// @Tags diaries
// @Produce json
// @Param diaryID path string true "ID del diario"
// @Success 200 {object} Diary
// @Failure 404 {string} string "diary not found"
// @Router /diaries/{diaryID} [get]
func getDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := s.GetDiary(chi.URLParam(r, "diaryID"))
		if !ok {
			http.Error(w, "diary not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// updateDiaryHandler godoc
// @Summary Editar diario
// @Tags diaries
// @Accept json
// @Produce json
// @Param diaryID path string true "ID del diario"
// @Param payload body updateDiaryRequest true "Campos a cambiar"
// @Success 200 {object} Diary
// @Failure 400 {string} string "invalid json / unknown mood"
// @Failure 404 {string} string "diary not found"
// @Router /diaries/{diaryID} [patch]
func updateDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateDiaryRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Mood != nil && !req.Mood.Valid() {
			http.Error(w, "unknown mood", http.StatusBadRequest)
			return
		}

		updated, ok := s.UpdateDiary(chi.URLParam(r, "diaryID"), UpdateInput{
			Title:   req.Title,
			Content: req.Content,
			Tags:    req.Tags,
			Mood:    req.Mood,
		})
		if !ok {
			http.Error(w, "diary not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteDiaryHandler godoc
// @Summary Eliminar diario
// @Tags diaries
// @Param diaryID path string true "ID del diario"
// @Success 204
// @Failure 404 {string} string "diary not found"
// @Router /diaries/{diaryID} [delete]
func deleteDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.DeleteDiary(chi.URLParam(r, "diaryID")) {
			http.Error(w, "diary not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
