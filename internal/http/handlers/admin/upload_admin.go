package admin

import (
	"errors"

	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadImage 上传图片，返回可访问的 URL
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_file_required", err)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	url, err := h.UploadService.SaveFile(c.Request.Context(), file, scene)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "error.upload_too_large", nil)
		case errors.Is(err, service.ErrUploadInvalidType):
			respondError(c, response.CodeBadRequest, "error.upload_type_invalid", nil)
		case errors.Is(err, service.ErrUploadInvalidImage):
			respondError(c, response.CodeBadRequest, "error.upload_not_image", nil)
		case errors.Is(err, service.ErrUploadDimensions):
			respondError(c, response.CodeBadRequest, "error.upload_dimensions", nil)
		default:
			respondError(c, response.CodeInternal, "error.upload_failed", err)
		}
		return
	}

	requestLog(c).Infow("admin_image_uploaded", "scene", scene, "url", url)
	response.Success(c, gin.H{"url": url})
}
