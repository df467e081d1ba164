package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/internal/model"
	nlog "github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/metrics"
)

// splitFileName 在最后一个点处拆分文件名. 没有扩展名（或点之前为空）视为非法输入.
func splitFileName(declared string) (name, ext string, err error) {
	trimmed := strings.TrimSpace(declared)

	dot := strings.LastIndex(trimmed, ".")
	if dot <= 0 || dot == len(trimmed)-1 {
		return "", "", fmt.Errorf("%w: file name %q has no extension", ErrInvalidArgument, declared)
	}

	return strings.TrimSpace(trimmed[:dot]), strings.ToLower(trimmed[dot+1:]), nil
}

// buildObjectKey 构建对象存储路径. 与下载 URL 一样由 uid 和声明的文件名决定.
func buildObjectKey(uid, declared string) string {
	return fmt.Sprintf("%s/%s", uid, strings.TrimSpace(declared))
}

// UploadFile 上传文件并记录元数据. 流程：
//
//  1. 读取所有者档案（不存在返回 ErrNotFound）
//  2. 原子预占配额（超限返回 ErrQuotaExceeded，且此时无任何改动；
//     恰好用满上限的边界允许通过）
//  3. 字节写入对象存储并取回下载 URL
//  4. 写入文件文档（recycled=false, starred=false）
//
// 第 3、4 步失败会归还已预占的配额；归还本身失败时返回 ErrInconsistent，
// 提示调用方走对账而不是重试.
func (s *VaultService) UploadFile(ctx context.Context, uid, declaredName string,
	reader io.Reader, size int64, folderID string,
) (*model.File, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: file size %d", ErrInvalidArgument, size)
	}

	fileName, fileType, err := splitFileName(declaredName)
	if err != nil {
		return nil, err
	}

	if folderID == "" {
		folderID = model.RootFolder
	}

	// 所有者档案
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	// 配额预占
	if err := s.reserveQuota(ctx, user.ID, size); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			metrics.QuotaRejections.Inc()
		}

		return nil, err
	}

	file, err := s.storeFile(ctx, uid, declaredName, fileName, fileType, reader, size, folderID)
	if err != nil {
		// 补偿：归还预占的配额
		if relErr := s.releaseQuota(ctx, uid, size); relErr != nil {
			nlog.Logger().Error().Err(relErr).Str("user", uid).Int64("size", size).
				Msg("quota release failed after upload failure")

			return nil, fmt.Errorf("%w: upload failed (%v) and %d reserved bytes were not released",
				ErrInconsistent, err, size)
		}

		return nil, err
	}

	metrics.UploadBytes.Add(float64(size))
	nlog.Logger().Info().Str("user", uid).Str("file", file.ID).Int64("size", size).Msg("file uploaded")

	return file, nil
}

// storeFile 完成上传的后半程：写对象存储、取 URL、落文件文档.
func (s *VaultService) storeFile(ctx context.Context, uid, declaredName, fileName, fileType string,
	reader io.Reader, size int64, folderID string,
) (*model.File, error) {
	objectKey := buildObjectKey(uid, declaredName)
	contentType := mime.TypeByExtension("." + fileType)

	if err := s.blob.Put(ctx, objectKey, reader, size, contentType); err != nil {
		return nil, transientErr("store blob", err)
	}

	src, err := s.blob.URLFor(ctx, objectKey)
	if err != nil {
		return nil, transientErr("resolve blob url", err)
	}

	file := &model.File{
		ID:           newID(),
		UID:          uid,
		FileName:     fileName,
		FileType:     fileType,
		SizeInBytes:  size,
		ParentFolder: folderID,
		Src:          src,
		Recycled:     false,
		Starred:      false,
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)
	if err := dbx.Create(file).Error; err != nil {
		return nil, transientErr("create file", err)
	}

	return file, nil
}

// ToggleFileStarred 翻转文件星标，与文件夹星标相同的原子翻转.
func (s *VaultService) ToggleFileStarred(ctx context.Context, fileID string) (*model.File, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	tx := dbx.Model(&model.File{}).
		Where("id = ?", fileID).
		UpdateColumn("starred", gorm.Expr("NOT starred"))
	if tx.Error != nil {
		return nil, transientErr("star file", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: file %s", ErrNotFound, fileID)
	}

	var file model.File
	if err := dbx.First(&file, "id = ?", fileID).Error; err != nil {
		return nil, transientErr("read file", err)
	}

	return &file, nil
}

// MoveFileToBin 将文件移入回收站. 软删除保留配额占用，字节仍计入 totalSpaceUsed.
func (s *VaultService) MoveFileToBin(ctx context.Context, fileID string) error {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var file model.File
	if err := dbx.First(&file, "id = ?", fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: file %s", ErrNotFound, fileID)
		}

		return transientErr("read file", err)
	}

	if err := dbx.Model(&file).Update("recycled", true).Error; err != nil {
		return transientErr("recycle file", err)
	}

	nlog.Logger().Debug().Str("file", fileID).Msg("file moved to bin")

	return nil
}
