package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/inkpress/inkpress/internal/constants"
	handlershared "github.com/inkpress/inkpress/internal/http/handlers/shared"
	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminUserView 后台用户响应结构，附带 casbin 角色
type AdminUserView struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	AuthzRoles  []string   `json:"authz_roles"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserRolesRequest 设置用户后台角色请求
type UserRolesRequest struct {
	Roles []string `json:"roles"`
}

// UserStatusRequest 设置用户账号状态请求
type UserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListAdminUsers 后台用户列表
func (h *Handler) ListAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Role:     strings.TrimSpace(c.Query("role")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	views := make([]AdminUserView, 0, len(users))
	for _, user := range users {
		roles, err := h.AuthzService.GetUserRoles(user.ID)
		if err != nil {
			respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
			return
		}
		views = append(views, AdminUserView{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        user.Role,
			Status:      user.Status,
			AuthzRoles:  roles,
			LastLoginAt: user.LastLoginAt,
			CreatedAt:   user.CreatedAt,
		})
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// SetAdminUserRoles 覆盖式设置用户的后台角色
func (h *Handler) SetAdminUserRoles(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UserRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	known, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, role := range known {
		knownSet[role] = struct{}{}
	}
	for _, role := range req.Roles {
		if _, ok := knownSet[strings.ToLower(strings.TrimSpace(role))]; !ok {
			respondError(c, response.CodeBadRequest, "error.user_roles_invalid", nil)
			return
		}
	}

	user, err := h.UserRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}

	if err := h.AuthzService.SetUserRoles(id, req.Roles); err != nil {
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}

	requestLog(c).Infow("admin_user_roles_set", "user_id", id, "roles", req.Roles)
	response.Success(c, gin.H{"updated": true})
}

// SetAdminUserStatus 启用/禁用账号；禁用时立即吊销已签发 Token
func (h *Handler) SetAdminUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		respondError(c, response.CodeBadRequest, "error.user_status_invalid", nil)
		return
	}

	user, err := h.UserRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}

	user.Status = status
	if status == constants.UserStatusDisabled {
		now := time.Now()
		user.TokenVersion++
		user.TokenInvalidBefore = &now
	}
	if err := h.UserRepo.Update(user); err != nil {
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}

	requestLog(c).Infow("admin_user_status_set", "user_id", id, "status", status)
	response.Success(c, gin.H{"updated": true})
}
