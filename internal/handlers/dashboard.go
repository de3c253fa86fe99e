package handlers

import (
	"net/http"
	"time"

	"clinic-admin/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	stats *repository.StatsRepository
	log   *zap.Logger
}

func NewDashboardHandler(stats *repository.StatsRepository, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{stats: stats, log: log}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	stats, err := h.stats.Collect(time.Now())
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{"stats": stats})
}
