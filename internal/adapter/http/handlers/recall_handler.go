package handlers

import (
	"net/http"
	"strings"

	response "ev_warranty/internal/adapter/http/dto/response"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/usecase"
	"ev_warranty/internal/usecase/interfaces"
	"ev_warranty/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecallHandler exposes the recall-constrained part catalog.
type RecallHandler struct {
	recall usecase.IRecallConstraintUseCase
	claims interfaces.IClaimSource
	logger *zap.Logger
}

func NewRecallHandler(recall usecase.IRecallConstraintUseCase, claims interfaces.IClaimSource, logger *zap.Logger) *RecallHandler {
	return &RecallHandler{recall: recall, claims: claims, logger: logging.OrNop(logger)}
}

// AllowedPartsByVIN godoc
// @Summary      Parts a VIN's recalls allow
// @Tags         recalls
// @Produce      json
// @Param        vin  query     string  true  "Vehicle identification number"
// @Success      200  {object}  response.AllowedPartsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /recalls/allowed-parts [get]
func (h *RecallHandler) AllowedPartsByVIN(c *gin.Context) {
	vin := strings.TrimSpace(c.Query("vin"))
	if vin == "" {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "vin is required", http.StatusBadRequest))
		return
	}
	h.writeAllowed(c, vin)
}

// AllowedPartsByClaim godoc
// @Summary      Parts a claim's vehicle recalls allow
// @Tags         recalls
// @Produce      json
// @Param        claim_id  path      string  true  "Claim id"
// @Success      200       {object}  response.AllowedPartsResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Router       /claims/{claim_id}/allowed-parts [get]
func (h *RecallHandler) AllowedPartsByClaim(c *gin.Context) {
	claimID := c.Param("claim_id")
	claim, err := h.claims.GetClaim(c.Request.Context(), claimID)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	if claim.ID == "" {
		writeError(c, mapEstimateError(usecase.ErrClaimNotFound))
		return
	}
	h.writeAllowed(c, claim.VIN)
}

func (h *RecallHandler) writeAllowed(c *gin.Context, vin string) {
	allowed, parts, err := h.recall.AllowedCatalog(c.Request.Context(), vin)
	if err != nil {
		h.logger.Warn("[recall][handler] catalog unavailable", zap.String("vin", vin), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAllowedParts(vin, allowed, parts))
}
