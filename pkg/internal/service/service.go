// Package service 实现存储核心：账号开通、文件夹树、文件上传与配额控制、回收站转换.
package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/yeisme/drivevault/pkg/configs"
	ctxPkg "github.com/yeisme/drivevault/pkg/context"
	"github.com/yeisme/drivevault/pkg/internal/storage/db"
)

// BlobStore 抽象对象存储：按路径写入字节并取回下载 URL. 运行时由 MinIO 客户端实现.
type BlobStore interface {
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	URLFor(ctx context.Context, objectKey string) (string, error)
}

// VaultService 聚合存储核心的全部操作.
type VaultService struct {
	blob     BlobStore
	dbClient *db.Client
	// maxSpace 新用户的配额上限（字节）
	maxSpace int64
}

// NewVaultService 从 context 中取出存储客户端构建服务实例.
func NewVaultService(c context.Context) *VaultService {
	return &VaultService{
		blob:     ctxPkg.GetS3Client(c),
		dbClient: ctxPkg.GetDBClient(c),
		maxSpace: configs.GetConfig().Quota.MaxSpaceAvailable,
	}
}

// newID 生成全系统唯一的标识符. 碰撞视为正确性缺陷而不是可恢复错误.
func newID() string {
	return uuid.NewString()
}
