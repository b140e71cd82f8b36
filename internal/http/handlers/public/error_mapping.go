package public

import (
	"errors"

	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var commentCreateErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
	{target: service.ErrPostClosed, code: response.CodeBadRequest, key: "error.comment_post_closed"},
	{target: service.ErrParentInvalid, code: response.CodeBadRequest, key: "error.comment_parent_invalid"},
	{target: service.ErrValidation, code: response.CodeBadRequest, key: "error.comment_content_required"},
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrUsernameExists, code: response.CodeBadRequest, key: "error.username_taken"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_taken"},
	{target: service.ErrValidation, code: response.CodeBadRequest, key: "error.bad_request"},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, key: "error.user_disabled"},
}

func respondCommentCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, commentCreateErrorRules, response.CodeInternal, "error.comment_create_failed")
}

func respondLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "error.login_failed")
}
