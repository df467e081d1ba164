package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
)

// ListDrive 处理网盘内容列表请求：未回收的文件夹与最近文件.
func ListDrive(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		l.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	resp, err := svc.ListDrive(c.Request.Context(), user)
	if err != nil {
		l.Error().Err(err).Str("user", user).Msg("failed to list drive")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateFolder 处理创建文件夹请求.
func CreateFolder(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		l.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return
	}

	var req types.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid create folder request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	folder, err := svc.CreateFolder(c.Request.Context(), user, &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Msg("failed to create folder")
		fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, folder)
}

// RenameFolder 处理重命名文件夹请求.
func RenameFolder(c *gin.Context) {
	l := log.Logger()

	folderID := c.Param("id")
	if folderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing folder ID"})

		return
	}

	var req types.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid rename folder request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	folder, err := svc.RenameFolder(c.Request.Context(), folderID, &req)
	if err != nil {
		l.Error().Err(err).Str("folder", folderID).Msg("failed to rename folder")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, folder)
}

// StarFolder 处理文件夹星标翻转请求.
func StarFolder(c *gin.Context) {
	l := log.Logger()

	folderID := c.Param("id")
	if folderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing folder ID"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	folder, err := svc.ToggleFolderStarred(c.Request.Context(), folderID)
	if err != nil {
		l.Error().Err(err).Str("folder", folderID).Msg("failed to star folder")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, folder)
}

// BinFolder 处理文件夹移入回收站请求.
func BinFolder(c *gin.Context) {
	l := log.Logger()

	folderID := c.Param("id")
	if folderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing folder ID"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	if err := svc.MoveFolderToBin(c.Request.Context(), folderID); err != nil {
		l.Warn().Err(err).Str("folder", folderID).Msg("failed to move folder to bin")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"id": folderID, "recycled": true})
}
