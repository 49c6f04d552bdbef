package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goldkarat/internal/usecases"
)

type intervalRequest struct {
	Seconds *float64 `json:"seconds" binding:"required"`
}

type intervalResponse struct {
	Seconds float64 `json:"seconds"`
	Running bool    `json:"running"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Interaction) handlerPrices(c *gin.Context) {
	c.JSON(http.StatusOK, toSnapshotResponse(that.engine.State()))
}

// handlerRefresh runs a refresh and answers with the resulting snapshot.
// A failed refresh is still a 200: the failure is part of the snapshot.
func (that *Interaction) handlerRefresh(c *gin.Context) {
	if that.engine.State().IsLoading {
		c.JSON(http.StatusConflict, errorResponse{Error: "refresh already in progress"})
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(that.engine.Refresh(c.Request.Context())))
}

func (that *Interaction) handlerGetInterval(c *gin.Context) {
	interval := that.engine.Interval()
	c.JSON(http.StatusOK, intervalResponse{Seconds: interval.Seconds(), Running: interval > 0})
}

func (that *Interaction) handlerSetInterval(c *gin.Context) {
	log := that.logger.With("method", "handlerSetInterval")

	var req intervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "body must be {\"seconds\": <number>}"})
		return
	}

	requested, err := usecases.IntervalFromSeconds(*req.Seconds)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "seconds must be a finite number"})
		return
	}
	if requested < usecases.MinRefreshInterval {
		log.Debug("clamping refresh interval", "requested", requested)
	}

	effective, err := that.engine.StartAutoRefresh(requested)
	if err != nil {
		log.Error("failed to reschedule refresh", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "could not schedule refresh"})
		return
	}

	c.JSON(http.StatusOK, intervalResponse{Seconds: effective.Seconds(), Running: true})
}

func (that *Interaction) handlerStopInterval(c *gin.Context) {
	that.engine.StopAutoRefresh()
	c.JSON(http.StatusOK, intervalResponse{})
}
