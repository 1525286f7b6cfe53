package handlers

import (
	"net/http"

	"contracthub/middleware"
	"contracthub/services/stats"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

// ClientStats returns the authenticated client's booking summary metrics.
func (hb *HandlerBundle) ClientStats(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	summary, err := hb.Stats.ClientStats(actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ContractorDashboard returns the authenticated contractor's headline metrics
// plus pending job requests and active jobs.
func (hb *HandlerBundle) ContractorDashboard(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	dashboard, err := hb.Stats.ContractorDashboard(actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// ContractorEarnings reports completed-booking income for the requested
// period (month, quarter, or year; month by default).
func (hb *HandlerBundle) ContractorEarnings(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	period := stats.EarningsPeriod(c.DefaultQuery("period", string(stats.PeriodMonth)))
	switch period {
	case stats.PeriodMonth, stats.PeriodQuarter, stats.PeriodYear:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "period must be month, quarter or year")
		return
	}

	report, err := hb.Stats.ContractorEarnings(actor, period)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
