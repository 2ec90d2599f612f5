package web

import (
	"embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"main/config"
	"main/monitor"
	"main/query"
)

//go:embed static/*
var staticFS embed.FS

type Server struct {
	cfg config.Config
	db  *query.Database
	mon *monitor.Monitor
}

// apiResponse is the envelope every API endpoint returns.
type apiResponse struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func NewServer(cfg config.Config, db *query.Database, mon *monitor.Monitor) *Server {
	return &Server{cfg: cfg, db: db, mon: mon}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.Handle("/static/", http.FileServer(http.FS(staticFS)))

	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/summary", s.handleSummary)
	return mux
}

func StartServer(cfg config.Config, db *query.Database, mon *monitor.Monitor) {
	s := NewServer(cfg, db, mon)

	go func() {
		// Bind explicitly to localhost to avoid Windows Firewall prompts
		addr := cfg.ListenAddr
		log.Printf("Web UI disponible sur http://%v\n", addr)
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			log.Println("Erreur serveur web:", err)
		}
	}()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, _ := staticFS.ReadFile("static/index.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleDashboard returns the live snapshot; a pure read, recomputed on
// every request.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, apiResponse{Success: true, Data: s.mon.Dashboard()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, apiResponse{Success: true, Data: map[string]string{"status": "healthy"}})
}

// handleSummary aggregates seconds per app between optional unix-second
// bounds, defaulting to the retention window ending now.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now().Unix()
	start := now - int64(s.cfg.Retention/time.Second)
	end := now
	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "bad start", http.StatusBadRequest)
			return
		}
		start = parsed
	}
	if v := r.URL.Query().Get("end"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "bad end", http.StatusBadRequest)
			return
		}
		end = parsed
	}

	items, err := s.db.SummaryBetween(start, end)
	if err != nil {
		msg := err.Error()
		writeJSON(w, apiResponse{Success: false, Error: &msg})
		return
	}
	writeJSON(w, apiResponse{Success: true, Data: map[string]any{"start": start, "end": end, "items": items}})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
