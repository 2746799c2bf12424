package router

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	_ "echo-journal/internal/docs"
	"echo-journal/internal/domain/diaries"
	"echo-journal/internal/domain/events"
	"echo-journal/internal/domain/settings"
	"echo-journal/internal/export"
	"echo-journal/internal/middleware"
	"echo-journal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options trae los módulos ya construidos. main es dueño de su ciclo de vida.
type Options struct {
	Events   events.Consumer
	Diaries  *diaries.Store   // opcional
	Settings *settings.Service // opcional

	Log logger.Logger

	// Location para resolver "hoy" en /export; nil = time.Local.
	Location *time.Location

	// Si no está vacío, todo salvo /health y /swagger exige Bearer.
	APIToken string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.BearerToken(opts.APIToken, "/health", "/swagger/*"))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/status", statusHandler(opts))
	r.Get("/export", exportHandler(opts))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	events.RegisterRoutes(r, opts.Events)
	if opts.Diaries != nil {
		diaries.RegisterRoutes(r, opts.Diaries)
	}
	if opts.Settings != nil {
		settings.RegisterRoutes(r, opts.Settings)
	}

	return r
}

type statusResponse struct {
	IsLoading bool `json:"isLoading"`
}

// statusHandler godoc
// @Summary Estado de carga
// @Tags health
// @Produce json
// @Success 200 {object} statusResponse
// @Router /status [get]
func statusHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		loading := opts.Events.IsLoading()
		if opts.Diaries != nil {
			loading = loading || opts.Diaries.IsLoading()
		}
		writeJSON(w, http.StatusOK, statusResponse{IsLoading: loading})
	}
}

// exportHandler godoc
// @Summary Exportar un día
// @Tags export
// @Produce json
// @Produce application/yaml
// @Param date query string false "Día YYYY-MM-DD (default hoy)"
// @Param format query string false "json | yaml"
// @Success 200 {object} export.Day
// @Failure 400 {string} string "date must be YYYY-MM-DD / unknown export format"
// @Router /export [get]
func exportHandler(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		format, err := export.ParseFormat(q.Get("format"))
		if err != nil {
			http.Error(w, "unknown export format", http.StatusBadRequest)
			return
		}

		var day export.Day
		date := strings.TrimSpace(q.Get("date"))
		switch {
		case date == "":
			loc := opts.Location
			if loc == nil {
				loc = time.Local
			}
			day.Date = events.DateOf(time.Now(), loc)
			day.Events = opts.Events.TodayEvents()
		case events.ValidDate(date):
			day.Date = date
			day.Events = opts.Events.GetEventsByDate(date)
		default:
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if opts.Diaries != nil {
			day.Diaries = opts.Diaries.GetDiariesByDate(day.Date)
		}

		ct := "application/json"
		if format == export.FormatYAML {
			ct = "application/yaml"
		}
		w.Header().Set("Content-Type", ct)
		if err := export.Write(w, format, day); err != nil {
			http.Error(w, "export failed", http.StatusInternalServerError)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
