package http

import (
	"encoding/json"
	"log"
	"net/http"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
)

// RESTHandler exposes the thin request/response surface for clients that
// have not opened the real-time channel yet: health, session creation, and
// join-code lookup.
type RESTHandler struct {
	service *app.GameService
}

func NewRESTHandler(service *app.GameService) *RESTHandler {
	return &RESTHandler{service: service}
}

// Routes registers the REST endpoints on mux.
func (h *RESTHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /api/sessions", h.CreateSession)
	mux.HandleFunc("GET /api/sessions/{code}", h.LookupSession)
}

func (h *RESTHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"liveSessionCount": h.service.LiveCount(),
	})
}

type createSessionRequest struct {
	DisplayName string      `json:"displayName"`
	Mode        domain.Mode `json:"gameMode"`
	Genre       string      `json:"genre"`
}

func (h *RESTHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid-payload"})
		return
	}
	result, err := h.service.CreateSession(req.DisplayName, req.Mode, req.Genre)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": domain.Kind(err)})
		return
	}
	log.Printf("session %s created via REST by %q", result.JoinCode, req.DisplayName)
	writeJSON(w, http.StatusCreated, result)
}

func (h *RESTHandler) LookupSession(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	session, ok := h.service.Session(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": domain.Kind(domain.ErrSessionNotFound)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"joinCode":  session.JoinCode(),
		"phase":     session.Phase(),
		"teams":     session.TeamCount(),
		"questions": session.QuestionCount(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
