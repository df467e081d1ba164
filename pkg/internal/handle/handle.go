// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/rule"
)

// checkUser 提取用户标识：Header 优先 -> query 参数 -> 非 Release 模式下的默认测试用户.
// 标识需通过长度校验，与 user 集合主键的列宽一致.
func checkUser(c *gin.Context) (string, error) {
	user := c.GetHeader("X-User")
	if user == "" {
		user = c.Query("user")
	}
	// 测试默认值，不为 Debug 或者 Test 模式时
	if user == "" && gin.Mode() != gin.ReleaseMode {
		user = "test-user"
	}

	user = strings.TrimSpace(user)
	if err := rule.ValidateVar(user, "required,max=128"); err != nil {
		return "", errors.New("missing or invalid user")
	}

	return user, nil
}

// statusFor 将服务层错误类别映射到 HTTP 状态码.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyExists), errors.Is(err, service.ErrFolderNotEmpty):
		return http.StatusConflict
	case errors.Is(err, service.ErrQuotaExceeded):
		return http.StatusRequestEntityTooLarge
	default:
		// ErrTransient / ErrInconsistent 以及未知错误
		return http.StatusInternalServerError
	}
}

// fail 以统一的 JSON 结构返回错误.
func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
