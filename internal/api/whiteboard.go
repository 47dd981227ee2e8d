package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"

	"github.com/colabdraw/go-whiteboard/internal/config"
	"github.com/colabdraw/go-whiteboard/internal/database"
	"github.com/colabdraw/go-whiteboard/internal/presence"
	"github.com/colabdraw/go-whiteboard/internal/stats"
	"github.com/colabdraw/go-whiteboard/internal/storage"
)

// Metric names registered with the stats updater.
const (
	metricSignups       = "Signups"
	metricLogins        = "Logins"
	metricRoomsCreated  = "RoomsCreated"
	metricRoomsJoined   = "RoomsJoined"
	metricRoomsDeleted  = "RoomsDeleted"
	metricFilesUploaded = "FilesUploaded"
)

type WhiteboardApp struct {
	log       *log.Logger
	db        database.WhiteboardRepository
	uploads   storage.Gateway
	peers     *presence.Registry
	stats     stats.StatsProvider
	mux       *http.Server
	uploadDir string
}

func NewWhiteboardApp(mux *http.ServeMux, logger *log.Logger, db database.WhiteboardRepository, uploads storage.Gateway, st stats.StatsProvider, cfg *config.Config) *WhiteboardApp {
	s := &WhiteboardApp{
		log:       logger,
		db:        db,
		uploads:   uploads,
		peers:     presence.NewRegistry(),
		stats:     st,
		uploadDir: cfg.UploadDir,
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)

	mux.HandleFunc("POST /users/signup", s.signup)
	mux.HandleFunc("POST /users/login", s.login)
	mux.HandleFunc("GET /users", s.getAllUsers)
	mux.HandleFunc("POST /users/getuserdetails", s.getUserDetails)
	mux.HandleFunc("PATCH /users/edit-profile", s.editProfile)

	mux.HandleFunc("GET /rooms", s.listRooms)
	mux.HandleFunc("POST /rooms/create", s.createRoom)
	mux.HandleFunc("POST /rooms/join", s.joinRoom)
	mux.HandleFunc("POST /rooms/upload", s.uploadFile)
	mux.HandleFunc("POST /rooms/get-joined-rooms", s.getJoinedRooms)
	mux.HandleFunc("POST /rooms/get-created-rooms", s.getCreatedRooms)
	mux.HandleFunc("PATCH /rooms/update-room", s.updateRoom)
	mux.HandleFunc("DELETE /rooms/delete-room", s.deleteRoom)
	mux.HandleFunc("GET /rooms/verify-room", s.verifyRoom)
	mux.HandleFunc("POST /rooms/save-creator-peer", s.saveCreatorPeer)
	mux.HandleFunc("GET /rooms/get-creator-peer", s.getCreatorPeer)

	if st != nil {
		for _, name := range []string{
			metricSignups,
			metricLogins,
			metricRoomsCreated,
			metricRoomsJoined,
			metricRoomsDeleted,
			metricFilesUploaded,
		} {
			st.RegisterMetric(name)
		}
	}

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *WhiteboardApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *WhiteboardApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *WhiteboardApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *WhiteboardApp) incr(name string) {
	if s.stats != nil {
		s.stats.Incr(name)
	}
}

func (s *WhiteboardApp) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
