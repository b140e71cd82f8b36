package public

import (
	"errors"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/i18n"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	service.CaptchaVerifyPayload
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	service.CaptchaVerifyPayload
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// respondWeakPassword 返回密码策略错误，尽量携带具体的策略提示。
func respondWeakPassword(c *gin.Context, err error) {
	locale := i18n.ResolveLocale(c)
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		respondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, policyErr.Key(), policyErr.Args()...), nil)
		return
	}
	respondError(c, response.CodeBadRequest, "error.password_invalid", nil)
}

// Register 用户注册，成功后直接下发登录 Token
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CaptchaService.Verify("register", req.CaptchaVerifyPayload); err != nil {
		respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		if errors.Is(err, service.ErrWeakPassword) {
			respondWeakPassword(c, err)
			return
		}
		respondWithMappedError(c, err, registerErrorRules, response.CodeInternal, "error.register_failed")
		return
	}

	token, expiresAt, err := h.AuthService.GenerateJWT(user)
	if err != nil {
		respondError(c, response.CodeInternal, "error.register_failed", err)
		return
	}

	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CaptchaService.Verify("login", req.CaptchaVerifyPayload); err != nil {
		respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondLoginError(c, err)
		return
	}

	requestLog(c).Infow("user_login", "user_id", user.ID, "username", user.Username)
	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// GetCaptcha 获取验证码挑战与场景开关
func (h *Handler) GetCaptcha(c *gin.Context) {
	data := gin.H{
		"provider": h.Config.Captcha.Provider,
		"scenes": gin.H{
			"login":    h.CaptchaService.RequiredForScene("login"),
			"register": h.CaptchaService.RequiredForScene("register"),
		},
	}
	if h.Config.Captcha.Provider == constants.CaptchaProviderImage {
		challenge, err := h.CaptchaService.GenerateImageChallenge()
		if err != nil {
			respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
			return
		}
		data["challenge"] = challenge
	}
	response.Success(c, data)
}

// Me 获取当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.AuthService.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.Success(c, user)
}

// ChangePassword 修改当前用户密码，成功后旧 Token 全部失效
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeBadRequest, "error.old_password_wrong", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondWeakPassword(c, err)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.password_change_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"changed": true})
}
