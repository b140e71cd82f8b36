package public

import (
	handlershared "github.com/inkpress/inkpress/internal/http/handlers/shared"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// currentViewer 从上下文提取访问者身份，未登录时返回匿名身份。
func currentViewer(c *gin.Context) service.Viewer {
	viewer := service.Viewer{}
	if value, ok := c.Get("username"); ok {
		if username, ok := value.(string); ok {
			viewer.Username = username
		}
	}
	if value, ok := c.Get("user_is_admin"); ok {
		if isAdmin, ok := value.(bool); ok {
			viewer.IsAdmin = isAdmin
		}
	}
	return viewer
}
