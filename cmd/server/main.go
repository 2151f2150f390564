package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groupstudy_backend/internal/assignments"
	"groupstudy_backend/internal/completions"
	"groupstudy_backend/internal/config"
	"groupstudy_backend/internal/logger"
	"groupstudy_backend/internal/session"
	"groupstudy_backend/internal/storage"
	"groupstudy_backend/internal/submissions"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.MustLoad()

	log := logger.SetupLogger(cfg.Env)
	slog.SetDefault(log)

	slog.Info("config loaded",
		"env", cfg.Env,
		"addr", cfg.HTTPServer.Address,
		"mongo_db", cfg.Mongo.Database,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := storage.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		slog.Error("failed to connect to mongo", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("mongo disconnect error", "err", err)
		}
	}()

	db := client.Database(cfg.Mongo.Database)

	tokens := session.NewTokenService(cfg.Session.Secret, cfg.Session.TTL)
	sessionHandler := session.NewHandler(tokens)
	assignmentHandler := assignments.NewHandler(assignments.NewRepository(db))
	submissionHandler := submissions.NewHandler(submissions.NewRepository(db))
	completionHandler := completions.NewHandler(completions.NewRepository(db))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Online group study is running"))
	})

	r.Post("/jwt", sessionHandler.Login)
	r.Post("/logout", sessionHandler.Logout)

	r.Post("/create-assignment", assignmentHandler.Create)
	r.Get("/all-assignment", assignmentHandler.List)
	r.Get("/assignment/{id}", assignmentHandler.Get)
	r.Get("/update-assignment/{id}", assignmentHandler.GetForUpdate)
	r.Put("/update-assignment/{id}", assignmentHandler.Update)
	r.Delete("/assignments/{id}", assignmentHandler.Delete)
	r.Delete("/delete-assignment/{assignmentId}", assignmentHandler.DeleteLegacy)

	r.Post("/assignment-submission", submissionHandler.Create)
	r.With(session.RequireSession(tokens)).
		Get("/submitted-assignment/{userEmail}", submissionHandler.ListPending)
	r.Get("/give-mark/{assignmentId}", submissionHandler.Get)
	r.Delete("/remove-submitted-assignment/{assignmentId}", submissionHandler.Delete)

	r.Post("/complete-assignment", completionHandler.Create)
	r.Get("/completed-assignments/{userEmail}", completionHandler.ListByUser)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		slog.Info("starting http server", "addr", cfg.HTTPServer.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
	}
}
