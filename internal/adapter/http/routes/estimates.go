package routes

import (
	"net/http"

	"ev_warranty/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathClaims    = "/claims"
	PathRecalls   = "/recalls"
	PathSessions  = "/sessions"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, recallHandler *handlers.RecallHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.POST("/totals", estimateHandler.CalculateTotals)
		estimates.PUT("/:estimate_id", estimateHandler.UpdateEstimate)
	}

	claims := rg.Group(PathClaims + "/:claim_id")
	{
		claims.GET("/allowed-parts", recallHandler.AllowedPartsByClaim)
		claims.GET("/estimates", estimateHandler.ListByClaim)
		claims.GET("/estimates/latest", estimateHandler.GetLatest)
		claims.GET("/estimates/compare", estimateHandler.Compare)
		claims.GET("/estimates/:version_no", estimateHandler.GetVersion)
	}

	recalls := rg.Group(PathRecalls)
	{
		recalls.GET("/allowed-parts", recallHandler.AllowedPartsByVIN)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions + "/:session_id")
	{
		sessions.DELETE("", sessionHandler.CloseSession)
		sessions.POST("/selection", sessionHandler.Select)
		sessions.GET("/selection", sessionHandler.GetSelection)
		sessions.POST("/estimates", sessionHandler.SubmitEstimate)
		sessions.POST("/shipments", sessionHandler.NotifyShipment)
		sessions.GET("/events", sessionHandler.Events)
	}
}
