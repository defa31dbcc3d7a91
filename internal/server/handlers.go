package server

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

//go:embed overlay.html
var overlayHTML []byte

// overlayCacheKey keys the 1s-TTL snapshot; the overlay polls at 1 Hz so
// the store is hit at most once a second no matter how many pages poll.
const overlayCacheKey = "overlay"

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type timerStateResponse struct {
	State          string     `json:"state"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	ElapsedSeconds int64      `json:"elapsed_seconds"`
}

type toggleResponse struct {
	Action string             `json:"action"`
	State  timerStateResponse `json:"state"`
}

type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// WriteJSONResponse writes body as JSON with the given status.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.ShouldLogError(err) {
		s.logger.Errorf("request failed: %v", err)
	}
	WriteJSONResponse(w, statusForError(err), ErrorResponse{
		Code:    errors.GetErrorCode(err),
		Message: errors.GetUserMessage(err),
	})
}

func statusForError(err error) int {
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeValidation),
		errors.IsErrorType(err, errors.ErrorTypeInvalidRange),
		errors.IsErrorType(err, errors.ErrorTypeMalformedData):
		return http.StatusBadRequest
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// OverlayPage serves the self-contained page OBS embeds as a browser
// source. It polls APIOverlay once a second.
func (s *Server) OverlayPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(overlayHTML)
}

// APIOverlay serves the overlay snapshot through the short-TTL cache.
func (s *Server) APIOverlay(w http.ResponseWriter, r *http.Request) {
	s.serveFromCacheOrCompute(w, overlayCacheKey, func() (any, error) {
		return s.api.Overlay(r.Context())
	})
}

func (s *Server) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := s.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		s.writeError(w, err)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.writeError(w, errors.NewInternalError("failed to encode response", err))
		return
	}

	s.cache.Set(cacheKey, payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// APISummary serves the stats snapshot with the coin balance.
func (s *Server) APISummary(w http.ResponseWriter, r *http.Request) {
	report, err := s.api.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	WriteJSONResponse(w, http.StatusOK, report)
}

// APIState reports the timer without touching it.
func (s *Server) APIState(w http.ResponseWriter, r *http.Request) {
	status, err := s.api.TimerStatus(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	WriteJSONResponse(w, http.StatusOK, newTimerStateResponse(status))
}

// APIToggle flips the timer; hotkey daemons POST here.
func (s *Server) APIToggle(w http.ResponseWriter, r *http.Request) {
	result, err := s.api.Toggle(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := toggleResponse{
		Action: string(result.Action),
		State:  timerStateResponse{State: domain.TimerIdle.String()},
	}
	if result.Action == services.ToggleStarted {
		resp.State.State = domain.TimerRunning.String()
		resp.State.StartedAt = &result.StartedAt
	}

	WriteJSONResponse(w, http.StatusOK, resp)
}

// Healthz is the liveness probe.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, healthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.started).Seconds(),
	})
}

func newTimerStateResponse(status *services.TimerStatus) timerStateResponse {
	resp := timerStateResponse{
		State:          status.State.String(),
		ElapsedSeconds: int64(status.Elapsed.Seconds()),
	}
	if status.State == domain.TimerRunning {
		resp.StartedAt = &status.StartedAt
	}
	return resp
}
