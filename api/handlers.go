/*
handlers.go - HTTP API handlers for the bakery simulation

PURPOSE:
  Exposes the session engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to engine commands.

ENDPOINTS:
  Sessions:
    POST   /api/sessions                    Create session
    GET    /api/sessions                    List sessions
    DELETE /api/sessions/{id}               Close session

  Per session (/api/sessions/{id}):
    GET    /state                           Full snapshot
    GET    /credit                          Credit report + band tables
    POST   /bake                            Start a bake
    POST   /upgrades/{uid}                  Buy an upgrade
    POST   /flour                           Buy a bulk flour tier
    POST   /invest                          Feed the sourdough investment
    POST   /missions/{action}               Claim a manual mission
    POST   /day                             Advance the day
    POST   /impulse                         Resolve the impulse prompt
    POST   /credit/borrow                   Draw on the credit line
    POST   /credit/pay                      Pay the supplier bill
    POST   /credit/loan                     Take the expansion loan
    POST   /credit/fund                     Feed the emergency fund

REQUEST FLOW:
  1. Parse the session id, look up the engine
  2. Decode the body
  3. Run the engine command
  4. Return the fresh snapshot (commands) or the projection (queries)

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body or id
  - 404: Unknown session, recipe, upgrade or mission
  - 409: Engine rejection (insufficient funds, capacity, closed session)

SEE ALSO:
  - dto.go: Request/response data structures
  - sessions.go: The session registry
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warp/bakery-engine/bakery"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Sessions *Registry
}

// NewHandler creates a new handler backed by the given registry.
func NewHandler(sessions *Registry) *Handler {
	return &Handler{Sessions: sessions}
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

// CreateSession starts a new simulation.
// POST /api/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, e := h.Sessions.Create()
	st := e.Snapshot()
	writeJSON(w, http.StatusCreated, SessionDTO{ID: id.String(), Day: st.Day})
}

// ListSessions returns the live session ids.
// GET /api/sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	dtos := []SessionDTO{}
	for _, id := range h.Sessions.IDs() {
		if e := h.Sessions.Get(id); e != nil {
			dtos = append(dtos, SessionDTO{ID: id.String(), Day: e.Snapshot().Day})
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CloseSession tears down a session and its scheduled work.
// DELETE /api/sessions/{id}
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session id", err)
		return
	}
	if !h.Sessions.Remove(id) {
		writeError(w, http.StatusNotFound, "Session not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// QUERIES
// =============================================================================

// GetState returns the full session snapshot.
// GET /api/sessions/{id}/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toStateDTO(id.String(), e.Snapshot(), e.PassiveRate().Float()))
}

// GetCredit returns the credit report with the static tables.
// GET /api/sessions/{id}/credit
func (h *Handler) GetCredit(w http.ResponseWriter, r *http.Request) {
	_, e, ok := h.session(w, r)
	if !ok {
		return
	}
	st := e.Snapshot()
	writeJSON(w, http.StatusOK, CreditReportDTO{
		Credit:      toCreditDTO(st),
		Bands:       toBandDTOs(bakery.Bands()),
		OfferedRate: bakery.LoanRateFor(st.Credit.Score),
	})
}

// =============================================================================
// COMMANDS
// =============================================================================

// StartBake starts baking a recipe.
// POST /api/sessions/{id}/bake
func (h *Handler) StartBake(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req BakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.StartBake(bakery.RecipeID(req.RecipeID))
	observeCommand("bake", err)
	h.respond(w, id, e, err)
}

// BuyUpgrade purchases a one-time upgrade.
// POST /api/sessions/{id}/upgrades/{uid}
func (h *Handler) BuyUpgrade(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	err := e.BuyUpgrade(bakery.UpgradeID(chi.URLParam(r, "uid")))
	observeCommand("upgrade", err)
	h.respond(w, id, e, err)
}

// BuyFlour purchases a bulk flour tier.
// POST /api/sessions/{id}/flour
func (h *Handler) BuyFlour(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req FlourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.BuyFlour(req.Tier)
	observeCommand("flour", err)
	h.respond(w, id, e, err)
}

// FeedInvestment feeds the sourdough investment.
// POST /api/sessions/{id}/invest
func (h *Handler) FeedInvestment(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.FeedInvestment(req.Amount)
	observeCommand("invest", err)
	h.respond(w, id, e, err)
}

// CompleteMission claims a manual mission by its action name.
// POST /api/sessions/{id}/missions/{action}
func (h *Handler) CompleteMission(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	err := e.CompleteMission(bakery.MissionAction(chi.URLParam(r, "action")))
	observeCommand("mission", err)
	h.respond(w, id, e, err)
}

// AdvanceDay ends the current day.
// POST /api/sessions/{id}/day
func (h *Handler) AdvanceDay(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	err := e.AdvanceDay()
	observeCommand("day", err)
	h.respond(w, id, e, err)
}

// Impulse resolves the temptation prompt.
// POST /api/sessions/{id}/impulse
func (h *Handler) Impulse(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req ImpulseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.TriggerImpulseChoice(req.Resist)
	observeCommand("impulse", err)
	h.respond(w, id, e, err)
}

// Borrow draws on the ingredient credit line.
// POST /api/sessions/{id}/credit/borrow
func (h *Handler) Borrow(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.Borrow(req.Amount)
	observeCommand("borrow", err)
	h.respond(w, id, e, err)
}

// PaySupplier settles the supplier bill.
// POST /api/sessions/{id}/credit/pay
func (h *Handler) PaySupplier(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	mode, ok2 := parsePayMode(req.Mode)
	if !ok2 {
		writeError(w, http.StatusBadRequest, "Mode must be full, partial or skip", nil)
		return
	}
	err := e.PaySupplier(mode)
	observeCommand("pay", err)
	h.respond(w, id, e, err)
}

// TakeLoan issues the expansion loan.
// POST /api/sessions/{id}/credit/loan
func (h *Handler) TakeLoan(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.TakeLoan(req.Amount)
	observeCommand("loan", err)
	h.respond(w, id, e, err)
}

// SaveToFund feeds the emergency fund.
// POST /api/sessions/{id}/credit/fund
func (h *Handler) SaveToFund(w http.ResponseWriter, r *http.Request) {
	id, e, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	err := e.SaveToEmergencyFund(req.Amount)
	observeCommand("fund", err)
	h.respond(w, id, e, err)
}

// =============================================================================
// SHARED PLUMBING
// =============================================================================

// session resolves the {id} route param to a live engine, writing the
// error response itself when it cannot.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, *bakery.Engine, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session id", err)
		return uuid.Nil, nil, false
	}
	e := h.Sessions.Get(id)
	if e == nil {
		writeError(w, http.StatusNotFound, "Session not found", nil)
		return uuid.Nil, nil, false
	}
	return id, e, true
}

// respond maps a command result to HTTP: rejections keep their detail in
// the error body, success returns the fresh snapshot.
func (h *Handler) respond(w http.ResponseWriter, id uuid.UUID, e *bakery.Engine, err error) {
	if err != nil {
		writeError(w, commandStatus(err), "Command rejected", err)
		return
	}
	writeJSON(w, http.StatusOK, toStateDTO(id.String(), e.Snapshot(), e.PassiveRate().Float()))
}

func commandStatus(err error) int {
	switch {
	case errors.Is(err, bakery.ErrInvalidTarget):
		return http.StatusNotFound
	case bakery.IsRejection(err), errors.Is(err, bakery.ErrSessionClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parsePayMode(s string) (bakery.PayMode, bool) {
	switch s {
	case "full":
		return bakery.PayFull, true
	case "partial":
		return bakery.PayPartial, true
	case "skip":
		return bakery.PaySkip, true
	default:
		return bakery.PayFull, false
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
