package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
)

// ProvisionUser 处理开通用户请求.
func ProvisionUser(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		l.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return
	}

	var req types.ProvisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid provision request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	profile, err := svc.ProvisionUser(c.Request.Context(), user, &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Msg("failed to provision user")
		fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile 处理读取用户档案请求.
func GetProfile(c *gin.Context) {
	l := log.Logger()

	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	profile, err := svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		l.Warn().Err(err).Str("user", uid).Msg("failed to read profile")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, profile)
}
