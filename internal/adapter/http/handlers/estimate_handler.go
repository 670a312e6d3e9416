package handlers

import (
	"net/http"
	"strconv"

	request "ev_warranty/internal/adapter/http/dto/request"
	response "ev_warranty/internal/adapter/http/dto/response"
	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/usecase"
	"ev_warranty/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EstimateHandler serves the estimate version store and the live calculator.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	logger  *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{usecase: uc, logger: logging.OrNop(logger)}
}

// CalculateTotals godoc
// @Summary      Price a draft estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "Draft"
// @Success      200   {object}  response.TotalsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /estimates/totals [post]
func (h *EstimateHandler) CalculateTotals(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}
	d := payload.ToDraft()
	totals, err := h.usecase.CalculateTotals(d.Items, d.LaborHours, d.LaborRate)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// CreateEstimate godoc
// @Summary      Create an estimate version
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "Estimate"
// @Success      201   {object}  response.EstimateVersionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("[estimate][handler] invalid payload", zap.Error(err))
		writeError(c, errInvalidEstimatePayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		h.logger.Info("[estimate][handler] create failed", zap.String("claim_id", payload.ClaimID), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateVersion(created))
}

// UpdateEstimate godoc
// @Summary      Update an estimate version in place
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                   true  "Estimate version id"
// @Param        body         body      request.EstimateRequest  true  "Estimate"
// @Success      200          {object}  response.EstimateVersionResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Failure      422          {object}  pkg.HTTPError
// @Failure      502          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("[estimate][handler] invalid payload", zap.String("estimate_id", estimateID), zap.Error(err))
		writeError(c, errInvalidEstimatePayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), estimateID, payload.ToDraft())
	if err != nil {
		h.logger.Info("[estimate][handler] update failed", zap.String("estimate_id", estimateID), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateVersion(updated))
}

// ListByClaim godoc
// @Summary      List a claim's estimate versions
// @Tags         estimates
// @Produce      json
// @Param        claim_id  path      string  true  "Claim id"
// @Success      200       {array}   response.EstimateVersionResponse
// @Failure      502       {object}  pkg.HTTPError
// @Router       /claims/{claim_id}/estimates [get]
func (h *EstimateHandler) ListByClaim(c *gin.Context) {
	versions, err := h.usecase.GetByClaim(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	entities.SortByVersionNo(versions)
	c.JSON(http.StatusOK, response.FromEstimateVersions(versions))
}

// GetLatest godoc
// @Summary      Latest estimate version of a claim
// @Tags         estimates
// @Produce      json
// @Param        claim_id  path      string  true  "Claim id"
// @Success      200       {object}  response.EstimateVersionResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /claims/{claim_id}/estimates/latest [get]
func (h *EstimateHandler) GetLatest(c *gin.Context) {
	latest, err := h.usecase.GetLatest(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	if latest == nil {
		writeError(c, mapEstimateError(usecase.ErrEstimateNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateVersion(*latest))
}

// GetVersion godoc
// @Summary      One estimate version of a claim
// @Tags         estimates
// @Produce      json
// @Param        claim_id    path      string  true  "Claim id"
// @Param        version_no  path      int     true  "Version number"
// @Success      200         {object}  response.EstimateVersionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /claims/{claim_id}/estimates/{version_no} [get]
func (h *EstimateHandler) GetVersion(c *gin.Context) {
	versionNo, err := strconv.Atoi(c.Param("version_no"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	v, err := h.usecase.GetVersion(c.Request.Context(), c.Param("claim_id"), versionNo)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	if v == nil {
		writeError(c, mapEstimateError(usecase.ErrEstimateNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateVersion(*v))
}

// Compare godoc
// @Summary      Diff two estimate versions
// @Tags         estimates
// @Produce      json
// @Param        claim_id  path      string  true  "Claim id"
// @Param        from      query     int     true  "From version"
// @Param        to        query     int     true  "To version"
// @Success      200       {object}  response.DiffResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /claims/{claim_id}/estimates/compare [get]
func (h *EstimateHandler) Compare(c *gin.Context) {
	from, errFrom := strconv.Atoi(c.Query("from"))
	to, errTo := strconv.Atoi(c.Query("to"))
	if errFrom != nil || errTo != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "from and to must be version numbers", http.StatusBadRequest))
		return
	}
	d, err := h.usecase.Compare(c.Request.Context(), c.Param("claim_id"), from, to)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDiff(d))
}
