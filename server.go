package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:embed frontend
var frontendFS embed.FS

const (
	maxUploadSize  = 10 << 20 // 10 MB
	maxDiagramSize = 1 << 20
	minCellSize    = 16
	maxCellSize    = 128
)

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// rateLimiter is a simple per-IP token bucket rate limiter.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int           // tokens per interval
	interval time.Duration // refill interval
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}
	// Cleanup stale entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, b := range rl.visitors {
				if time.Since(b.lastSeen) > 5*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	// Refill tokens based on elapsed time.
	elapsed := time.Since(b.lastSeen)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		b.tokens += refill * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Server is the main HTTP server.
type Server struct {
	mux      *http.ServeMux
	store    *Store
	gemini   *GeminiClient
	sse      *Broadcaster
	uploadRL *rateLimiter
	pressRL  *rateLimiter
}

// NewServer creates a configured HTTP server.
func NewServer(store *Store, gemini *GeminiClient) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		store:    store,
		gemini:   gemini,
		sse:      NewBroadcaster(),
		uploadRL: newRateLimiter(5, time.Minute),  // 5 uploads/min per IP
		pressRL:  newRateLimiter(60, time.Second), // 60 gestures/sec per IP
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Diagram API
	s.mux.HandleFunc("GET /api/diagrams", s.handleListDiagrams)
	s.mux.HandleFunc("POST /api/diagrams", s.handleCreateDiagram)
	s.mux.HandleFunc("POST /api/diagrams/import", s.handleImportDiagram)
	s.mux.HandleFunc("GET /api/diagrams/{id}", s.handleGetDiagram)
	s.mux.HandleFunc("GET /api/diagrams/{id}/svg", s.handleDiagramSVG)
	s.mux.HandleFunc("GET /api/diagrams/{id}/png", s.handleDiagramPNG)
	s.mux.HandleFunc("GET /api/variants", s.handleListVariants)

	// Gesture API
	s.mux.HandleFunc("POST /api/diagrams/{id}/press", s.handlePress)
	s.mux.HandleFunc("POST /api/diagrams/{id}/release", s.handleRelease)
	s.mux.HandleFunc("GET /api/diagrams/{id}/events", s.handleDiagramEvents)

	// Icons
	s.mux.HandleFunc("GET /sym/{name}", s.handleSymbol)

	// Frontend static files
	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	fileServer := http.FileServer(http.FS(frontendDir))
	s.mux.HandleFunc("GET /diagram/{id}", s.handleDiagramPage)
	s.mux.Handle("GET /", fileServer)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// open returns the live diagram whose changes are broadcast to its viewers.
func (s *Server) open(id string) (*LiveDiagram, error) {
	return s.store.Open(id, func(evt any) {
		s.sse.Publish(id, evt)
	})
}

// --- Diagram handlers ---

// GET /api/diagrams: list all diagrams.
func (s *Server) handleListDiagrams(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListDiagrams())
}

// POST /api/diagrams: store a diagram sent as JSON.
func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	if !s.uploadRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDiagramSize)
	var d Diagram
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		jsonError(w, "Invalid diagram JSON", http.StatusBadRequest)
		return
	}

	saved, err := s.store.SaveDiagram(&d)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// POST /api/diagrams/import: upload a board photo, extract it with Gemini,
// save the diagram.
func (s *Server) handleImportDiagram(w http.ResponseWriter, r *http.Request) {
	if !s.uploadRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	if s.gemini == nil {
		jsonError(w, "Image import not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, "Image too large (max 10 MB)", http.StatusRequestEntityTooLarge)
		return
	}

	variant := r.FormValue("variant")
	if _, err := LookupVariant(variant); err != nil {
		jsonError(w, "Field 'variant' must name a known variant", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, "Field 'image' required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedMIME[mimeType] {
		jsonError(w, "Accepted formats: JPEG or PNG", http.StatusBadRequest)
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "Could not read image", http.StatusInternalServerError)
		return
	}

	d, err := s.gemini.ImportDiagram(r.Context(), imageData, mimeType, variant)
	if err != nil {
		log.Printf("Gemini import error: %v", err)
		jsonError(w, "Could not extract a diagram from the image", http.StatusInternalServerError)
		return
	}
	if title := strings.TrimSpace(r.FormValue("title")); title != "" {
		d.Title = title
	}

	saved, err := s.store.SaveDiagram(d)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// GET /api/diagrams/{id}: a diagram with what it currently shows.
func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	live, ok := s.lookup(w, r)
	if !ok {
		return
	}

	resp := struct {
		*Diagram
		CellPrefix string    `json:"cell_prefix"`
		State      *Snapshot `json:"state"`
	}{
		Diagram:    live.Diagram.Clone(),
		CellPrefix: live.Table.CellPrefix,
		State:      live.State.Snapshot(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/diagrams/{id}/svg: the diagram as it currently shows.
func (s *Server) handleDiagramSVG(w http.ResponseWriter, r *http.Request) {
	live, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	RenderSVG(&buf, live.State.Snapshot(), cellSize(r))
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// GET /api/diagrams/{id}/png: the diagram as it currently shows.
func (s *Server) handleDiagramPNG(w http.ResponseWriter, r *http.Request) {
	live, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := RenderPNG(&buf, live.State.Snapshot(), cellSize(r)); err != nil {
		log.Printf("render png %s: %v", live.Diagram.ID, err)
		jsonError(w, "Could not render diagram", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// GET /api/variants: the rule tables diagrams can use.
func (s *Server) handleListVariants(w http.ResponseWriter, _ *http.Request) {
	type variantInfo struct {
		Name       string `json:"name"`
		CellPrefix string `json:"cell_prefix"`
		Rules      int    `json:"rules"`
	}
	var list []variantInfo
	for _, name := range VariantNames() {
		t, _ := LookupVariant(name)
		list = append(list, variantInfo{Name: name, CellPrefix: t.CellPrefix, Rules: len(t.Keys())})
	}
	writeJSON(w, http.StatusOK, list)
}

// --- Gesture handlers ---

type pressRequest struct {
	// Cell is a cell id such as "sq4x4"; X and Y are used when it is empty.
	Cell string `json:"cell"`
	X    *int   `json:"x"`
	Y    *int   `json:"y"`
	// Signed means X and Y carry the modifier in their signs.
	Signed   bool      `json:"signed"`
	Modifier *Modifier `json:"modifier"`
}

func (req *pressRequest) resolve(d *Diagram, prefix string) (Square, Modifier, error) {
	var sq Square
	var mod Modifier
	switch {
	case req.Cell != "":
		var err error
		if sq, err = ParseSquareID(req.Cell, prefix); err != nil {
			return Square{}, 0, err
		}
		mod = d.ModifierAt(sq)
	case req.X != nil && req.Y != nil && req.Signed:
		sq, mod = DecodeSigned(*req.X, *req.Y)
	case req.X != nil && req.Y != nil:
		sq = Square{X: *req.X, Y: *req.Y}
		mod = d.ModifierAt(sq)
	default:
		return Square{}, 0, errors.New("field 'cell' or 'x' and 'y' required")
	}
	if req.Modifier != nil {
		if *req.Modifier > maxModifier {
			return Square{}, 0, errors.New("modifier out of range")
		}
		mod = *req.Modifier
	}
	return sq, mod, nil
}

// POST /api/diagrams/{id}/press: highlight the moves of a piece.
func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	if !s.pressRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	live, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req pressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	sq, mod, err := req.resolve(live.Diagram, live.Table.CellPrefix)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := live.Session.Press(sq, mod)
	if err != nil {
		log.Printf("press %s %v: %v", live.Diagram.ID, sq, err)
		jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// releaseRequest names the gesture returned by the press being released.
type releaseRequest struct {
	Gesture string `json:"gesture"`
}

// POST /api/diagrams/{id}/release: restore the diagram. A release without
// the current gesture is ignored, so one viewer cannot end another's.
func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	if !s.pressRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	live, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req releaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, live.Session.ReleaseGesture(req.Gesture))
}

// GET /api/diagrams/{id}/events: SSE stream.
func (s *Server) handleDiagramEvents(w http.ResponseWriter, r *http.Request) {
	live, ok := s.lookup(w, r)
	if !ok {
		return
	}

	s.sse.ServeSSE(w, r, live)
}

// GET /sym/{name}: a single icon as SVG.
func (s *Server) handleSymbol(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(r.PathValue("name"), ".svg")
	var buf bytes.Buffer
	if err := RenderIconSVG(&buf, name, cellSize(r)); err != nil {
		jsonError(w, "Unknown icon", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(buf.Bytes())
}

// --- Frontend page handlers ---

// GET /diagram/{id}: serve the diagram page.
func (s *Server) handleDiagramPage(w http.ResponseWriter, _ *http.Request) {
	data, _ := frontendFS.ReadFile("frontend/diagram.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// --- Helpers ---

// lookup opens the diagram named in the path, writing a 404 if there is none.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*LiveDiagram, bool) {
	live, err := s.open(r.PathValue("id"))
	if errors.Is(err, ErrDiagramNotFound) {
		jsonError(w, "Diagram not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Printf("open diagram %s: %v", r.PathValue("id"), err)
		jsonError(w, "Could not open diagram", http.StatusInternalServerError)
		return nil, false
	}
	return live, true
}

// cellSize reads the optional ?cell= query parameter.
func cellSize(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("cell"))
	if err != nil {
		return defaultCellSize
	}
	return min(max(n, minCellSize), maxCellSize)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
