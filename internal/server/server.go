// Package server implements the local development server: it owns one
// generator, regenerates on request, and serves the current snapshot as
// JSON or rendered images.
package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"

	"github.com/ditharaavindi/city-generator/pkg/analytics"
	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/render"
	"github.com/ditharaavindi/city-generator/pkg/scene"
)

// Server is the local development server for interactive generation.
// POST /api/generate swaps the config and the snapshot while readers are
// in flight, so every handler goes through mu.
type Server struct {
	mu   sync.RWMutex
	cfg  *config.Config
	gen  *scene.Generator
	port int
}

// New creates a server around a generator and its starting configuration.
func New(cfg *config.Config, gen *scene.Generator, port int) *Server {
	return &Server{cfg: cfg, gen: gen, port: port}
}

// Start generates an initial city and launches the HTTP server.
func (s *Server) Start() error {
	report := s.gen.Generate(s.cfg)
	log.Printf("initial generation: %s", report.Summary)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("city generator server starting on http://localhost%s", addr)

	return http.ListenAndServe(addr, s.routes())
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /render.png", s.handleRenderPNG)
	mux.HandleFunc("GET /render.svg", s.handleRenderSVG)
	mux.HandleFunc("GET /", s.handleIndex)
	return mux
}

// snapshot returns the current config, city and viewport under the read
// lock. The city itself is immutable once published, so callers may use
// it after the lock is released.
func (s *Server) snapshot() (*config.Config, *scene.City, int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	width, height := s.gen.Bounds()
	return s.cfg, s.gen.City(), width, height
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>City Generator</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;text-align:center">
<h1>City Generator</h1>
<p><a href="/render.png" style="color:#8cf">2D render</a> |
<a href="/render.png?view=3d" style="color:#8cf">3D render</a> |
<a href="/api/scene" style="color:#8cf">scene JSON</a></p>
<img src="/render.png" alt="city"/>
</body></html>`)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	_, city, _, _ := s.snapshot()
	if city == nil {
		http.Error(w, "no city generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(city)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	cfg, _, _, _ := s.snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	_, city, width, height := s.snapshot()
	if city == nil {
		http.Error(w, "no city generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analytics.Summarize(city, width, height))
}

// handleGenerate replaces the configuration with the request body (when
// one is supplied) and regenerates the city.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Body != nil && r.ContentLength != 0 {
		cfg := *s.cfg
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, fmt.Sprintf("decoding config: %v", err), http.StatusBadRequest)
			return
		}
		if report := config.Validate(&cfg); !report.Valid {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(report)
			return
		}
		s.cfg = &cfg
	}

	report := s.gen.Generate(s.cfg)
	log.Printf("regenerated city: %s", report.Summary)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"report": report,
		"counts": s.gen.City().Counts(),
	})
}

func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	cfg, city, width, height := s.snapshot()
	if city == nil {
		http.Error(w, "no city generated yet", http.StatusNotFound)
		return
	}
	palette := render.PaletteFor(cfg.Theme)

	var im image.Image
	if r.URL.Query().Get("view") == "3d" {
		im = render.Render3D(city, width, height, palette)
	} else {
		im = render.Render2D(city, width, height, palette)
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, im); err != nil {
		log.Printf("encoding render: %v", err)
	}
}

func (s *Server) handleRenderSVG(w http.ResponseWriter, _ *http.Request) {
	cfg, city, width, height := s.snapshot()
	if city == nil {
		http.Error(w, "no city generated yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.WriteSVG(city, width, height, render.PaletteFor(cfg.Theme), w); err != nil {
		log.Printf("writing svg: %v", err)
	}
}
