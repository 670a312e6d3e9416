package handlers

import (
	"net/http"
	"strings"

	request "ev_warranty/internal/adapter/http/dto/request"
	response "ev_warranty/internal/adapter/http/dto/response"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler drives claim sessions: one per UI window, keyed by a session id
// chosen by the client.
type SessionHandler struct {
	sessions *usecase.SessionRegistry
	logger   *zap.Logger
}

func NewSessionHandler(sessions *usecase.SessionRegistry, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logging.OrNop(logger)}
}

// Select godoc
// @Summary      Select a claim in a session
// @Description  Starts loading the claim in the background. A later selection supersedes it.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                    true  "Session id"
// @Param        body        body      request.SelectionRequest  true  "Claim"
// @Success      202         {object}  response.SelectionAcceptedResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/selection [post]
func (h *SessionHandler) Select(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.ClaimID) == "" {
		writeError(c, errInvalidRequest)
		return
	}
	s, err := h.sessions.Get(c.Param("session_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	token := s.Select(payload.ClaimID)
	c.JSON(http.StatusAccepted, response.SelectionAcceptedResponse{
		SessionID: s.ID(),
		ClaimID:   strings.TrimSpace(payload.ClaimID),
		Token:     token,
	})
}

// GetSelection godoc
// @Summary      Current view of a session
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {object}  response.ClaimViewResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/selection [get]
func (h *SessionHandler) GetSelection(c *gin.Context) {
	s, err := h.sessions.Lookup(c.Param("session_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaimView(s.View()))
}

// SubmitEstimate godoc
// @Summary      Save an estimate for the session's claim
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                          true  "Session id"
// @Param        body        body      request.SessionEstimateRequest  true  "Estimate"
// @Success      200         {object}  response.EstimateVersionResponse
// @Success      201         {object}  response.EstimateVersionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/estimates [post]
func (h *SessionHandler) SubmitEstimate(c *gin.Context) {
	var payload request.SessionEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}
	s, err := h.sessions.Get(c.Param("session_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	saved, err := s.Submit(c.Request.Context(), payload.EstimateID, payload.ToDraft())
	if err != nil {
		h.logger.Info("[session][handler] submit failed", zap.String("session_id", s.ID()), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	status := http.StatusOK
	if strings.TrimSpace(payload.EstimateID) == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromEstimateVersion(saved))
}

// NotifyShipment godoc
// @Summary      Relay a parts shipment arrival to a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Session id"
// @Param        body        body  request.ShipmentRequest  true  "Shipment"
// @Success      202
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/shipments [post]
func (h *SessionHandler) NotifyShipment(c *gin.Context) {
	s, err := h.sessions.Lookup(c.Param("session_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	var payload request.ShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.ShipmentID) == "" {
		writeError(c, errInvalidRequest)
		return
	}
	s.ShipmentReceived(payload.ClaimID, payload.ShipmentID)
	c.Status(http.StatusAccepted)
}

// CloseSession godoc
// @Summary      End a session
// @Description  Drops the session and ends its event streams.
// @Tags         sessions
// @Param        session_id  path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [delete]
func (h *SessionHandler) CloseSession(c *gin.Context) {
	id := c.Param("session_id")
	if !h.sessions.Close(id) {
		writeError(c, mapEstimateError(usecase.ErrSessionNotFound))
		return
	}
	h.logger.Info("[session][handler] session closed", zap.String("session_id", id))
	c.Status(http.StatusNoContent)
}

// Events godoc
// @Summary      Stream session events
// @Description  Server-sent events: claim.selected, claim.loaded, selection.discarded, estimate.saved, shipment.received.
// @Tags         sessions
// @Produce      text/event-stream
// @Param        session_id  path  string  true  "Session id"
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/events [get]
func (h *SessionHandler) Events(c *gin.Context) {
	s, err := h.sessions.Lookup(c.Param("session_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	events, unsubscribe := s.Bus().Subscribe()
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.SSEvent("view", response.FromClaimView(s.View()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(string(e.Topic), e)
			c.Writer.Flush()
		}
	}
}
