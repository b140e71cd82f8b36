package admin

import (
	"github.com/inkpress/inkpress/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard 后台仪表盘统计
func (h *Handler) GetDashboard(c *gin.Context) {
	overview, err := h.DashboardService.Overview()
	if err != nil {
		respondError(c, response.CodeInternal, "error.dashboard_failed", err)
		return
	}
	response.Success(c, overview)
}
