package health

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Server is a minimal liveness endpoint for container orchestrators
type Server struct {
	srv *http.Server
}

// NewServer builds a server answering 200 OK on / and /health
func NewServer(port string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return &Server{
		srv: &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		},
	}
}

// Start serves in the background until Shutdown
func (s *Server) Start() {
	go func() {
		log.Infof("Health endpoint listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Health endpoint error: %v", err)
		}
	}()
}

// Shutdown stops the server, waiting briefly for in-flight requests
func (s *Server) Shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Health endpoint shutdown error: %v", err)
	}
}
