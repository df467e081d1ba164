package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
)

// UploadFile 处理 multipart 文件上传：file 字段携带文件本体，folderId 指定目标文件夹.
func UploadFile(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		l.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return
	}

	var req types.UploadFileRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid upload request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})

		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("missing file part")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})

		return
	}

	src, err := header.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	defer src.Close()

	l.Info().
		Str("user", user).
		Str("file_name", header.Filename).
		Int64("size", header.Size).
		Msg("processing upload request")

	svc := service.NewVaultService(c.Request.Context())

	file, err := svc.UploadFile(c.Request.Context(), user, header.Filename, src, header.Size, req.FolderID)
	if err != nil {
		l.Error().Err(err).Str("user", user).Msg("failed to upload file")
		fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, file)
}

// StarFile 处理文件星标翻转请求.
func StarFile(c *gin.Context) {
	l := log.Logger()

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file ID"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	file, err := svc.ToggleFileStarred(c.Request.Context(), fileID)
	if err != nil {
		l.Error().Err(err).Str("file", fileID).Msg("failed to star file")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, file)
}

// BinFile 处理文件移入回收站请求. 软删除不释放配额.
func BinFile(c *gin.Context) {
	l := log.Logger()

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file ID"})

		return
	}

	svc := service.NewVaultService(c.Request.Context())

	if err := svc.MoveFileToBin(c.Request.Context(), fileID); err != nil {
		l.Warn().Err(err).Str("file", fileID).Msg("failed to move file to bin")
		fail(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"id": fileID, "recycled": true})
}
