package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/session"
	authhandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/auth"
	fileshandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/files"
	usershandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/users"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, authService port.AuthService, authHandler *authhandler.HandlerV1, usersHandler *usershandler.HandlerV1, filesHandler *fileshandler.HandlerV1, systemService port.SystemService, env string) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(16 << 20)) //16mb, base64 payloads included

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", session.TokenHeader},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/connect", authHandler.ConnectV1)
	r.With(session.Require(authService)).Get("/disconnect", authHandler.DisconnectV1)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", usersHandler.CreateUserV1)
		r.With(session.Require(authService)).Get("/me", usersHandler.GetMeV1)
	})

	r.Route("/files", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(session.Require(authService))
			r.Post("/", filesHandler.UploadV1)
			r.Get("/", filesHandler.ListFilesV1)
			r.Get("/{fileID}", filesHandler.GetFileV1)
			r.Put("/{fileID}/publish", filesHandler.PublishV1)
			r.Put("/{fileID}/unpublish", filesHandler.UnpublishV1)
		})
		r.With(session.Optional(authService)).Get("/{fileID}/data", filesHandler.GetContentV1)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		db, queue := systemService.Status(r.Context())
		resp := StatusResponse{DB: db, Queue: queue}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		stats, err := systemService.Stats(r.Context())
		if err != nil {
			logger.Error("error collecting stats", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	})

	return r
}

type StatusResponse struct {
	DB    bool `json:"db"`
	Queue bool `json:"queue"`
}
