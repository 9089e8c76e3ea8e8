package server

import (
	"net/http"

	"footmetric/internal/pipeline"
	"footmetric/internal/store"
)

// Server routes HTTP requests into the measurement pipeline.
type Server struct {
	pipe    *pipeline.Pipeline
	uploads *store.Store // nil disables upload persistence
}

// New creates a server around a configured pipeline. uploads may be
// nil to skip persisting raw uploads.
func New(pipe *pipeline.Pipeline, uploads *store.Store) *Server {
	return &Server{pipe: pipe, uploads: uploads}
}

// Routes returns the handler tree with CORS applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload_image", s.handleUploadImage)
	mux.HandleFunc("/measure", s.handleMeasure)
	mux.HandleFunc("/health", s.handleHealth)
	return corsMiddleware(mux)
}

// corsMiddleware allows all origins, as the original service did.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
