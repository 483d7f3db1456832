package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/klabast/wb-services/squeezers-site/internal/news"
)

// Server is the news admin: a static editor page plus a JSON API over the
// news store.
type Server struct {
	store     *news.Store
	adminHTML []byte
	auth      *Auth

	// one request at a time, so load-modify-write on the file never interleaves
	mu sync.Mutex
}

// NewServer returns a server editing store. auth may be nil.
func NewServer(store *news.Store, adminHTML []byte, auth *Auth) *Server {
	return &Server{store: store, adminHTML: adminHTML, auth: auth}
}

// Routes returns the HTTP handler of the admin.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.serialize)
	r.Use(s.auth.Middleware)

	r.Get("/", s.ServeIndex)
	r.Get("/index.html", s.ServeIndex)
	r.Get("/api/news", s.GetNews)
	r.Post("/api/news", s.SaveNews)

	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)
	return r
}

func (s *Server) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// ServeIndex serves the editor page
func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentTypeHTML)
	if _, err := w.Write(s.adminHTML); err != nil {
		log.Printf("Error writing admin HTML: %v", err)
	}
}

// GetNews returns the news file content as stored
func (s *Server) GetNews(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.Load()
	if err != nil {
		log.Printf("Error loading news: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SaveNews normalizes the posted list and writes it to the news file
func (s *Server) SaveNews(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, ErrReadBody)
		return
	}

	raw, err := news.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := news.Normalize(raw)
	if err := s.store.Write(items); err != nil {
		log.Printf("Error saving news: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("✅ Saved %d news items to %s", len(items), s.store.Path)
	writeJSON(w, http.StatusOK, map[string]string{"message": MsgSaved})
}
