package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
	nlog "github.com/yeisme/drivevault/pkg/log"
)

// MaxDriveFiles 单次列表返回的文件数量上限.
const MaxDriveFiles = 30

// CreateFolder 创建文件夹. 名称 trim 后不能为空；父文件夹只记录引用，
// 不校验其存在性（与查询时按 parent_folder 关联发现成员的弱引用模型一致）.
func (s *VaultService) CreateFolder(ctx context.Context, uid string, req *types.CreateFolderRequest) (*model.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is empty", ErrInvalidArgument)
	}

	parent := req.ParentFolder
	if parent == "" {
		parent = model.RootFolder
	}

	folder := &model.Folder{
		ID:           newID(),
		UID:          uid,
		Name:         name,
		ParentFolder: parent,
		Recycled:     false,
		Starred:      false,
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)
	if err := dbx.Create(folder).Error; err != nil {
		return nil, transientErr("create folder", err)
	}

	nlog.Logger().Debug().Str("user", uid).Str("folder", folder.ID).Msg("folder created")

	return folder, nil
}

// ListDrive 返回用户所有未回收的文件夹和最近的未回收文件（createdAt 倒序，上限 MaxDriveFiles）.
// 两个查询并发执行，结果是一次性的时间点快照.
func (s *VaultService) ListDrive(ctx context.Context, uid string) (*types.DriveListResponse, error) {
	var (
		folders []model.Folder
		files   []model.File
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.dbClient.GetDB().WithContext(gctx).
			Where("uid = ? AND recycled = ?", uid, false).
			Find(&folders).Error
	})

	g.Go(func() error {
		return s.dbClient.GetDB().WithContext(gctx).
			Where("uid = ? AND recycled = ?", uid, false).
			Order("created_at DESC").
			Limit(MaxDriveFiles).
			Find(&files).Error
	})

	if err := g.Wait(); err != nil {
		return nil, transientErr("list drive", err)
	}

	return &types.DriveListResponse{Folders: folders, Files: files}, nil
}

// RenameFolder 重命名文件夹，名称 trim 后不能为空.
func (s *VaultService) RenameFolder(ctx context.Context, folderID string, req *types.RenameFolderRequest) (*model.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is empty", ErrInvalidArgument)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var folder model.Folder
	if err := dbx.First(&folder, "id = ?", folderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: folder %s", ErrNotFound, folderID)
		}

		return nil, transientErr("read folder", err)
	}

	if err := dbx.Model(&folder).Update("name", name).Error; err != nil {
		return nil, transientErr("rename folder", err)
	}

	folder.Name = name

	return &folder, nil
}

// ToggleFolderStarred 翻转文件夹星标. 使用存储层的原子布尔翻转而不是读-改-写，
// 并发翻转之间不会互相丢失.
func (s *VaultService) ToggleFolderStarred(ctx context.Context, folderID string) (*model.Folder, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	tx := dbx.Model(&model.Folder{}).
		Where("id = ?", folderID).
		UpdateColumn("starred", gorm.Expr("NOT starred"))
	if tx.Error != nil {
		return nil, transientErr("star folder", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: folder %s", ErrNotFound, folderID)
	}

	var folder model.Folder
	if err := dbx.First(&folder, "id = ?", folderID).Error; err != nil {
		return nil, transientErr("read folder", err)
	}

	return &folder, nil
}

// MoveFolderToBin 将文件夹移入回收站. 守卫只检查直接子级（文件夹与文件），
// 且已回收的子级同样计入非空判定；检查与写入之间并发创建的子级会留在已回收的
// 父级下，作为接受的最终一致性风险.
func (s *VaultService) MoveFolderToBin(ctx context.Context, folderID string) error {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var folder model.Folder
	if err := dbx.First(&folder, "id = ?", folderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: folder %s", ErrNotFound, folderID)
		}

		return transientErr("read folder", err)
	}

	var childFolders int64
	if err := dbx.Model(&model.Folder{}).Where("parent_folder = ?", folderID).Count(&childFolders).Error; err != nil {
		return transientErr("count child folders", err)
	}

	var childFiles int64
	if err := dbx.Model(&model.File{}).Where("parent_folder = ?", folderID).Count(&childFiles).Error; err != nil {
		return transientErr("count child files", err)
	}

	if childFolders != 0 || childFiles != 0 {
		return fmt.Errorf("%w: folder %s has %d child folders and %d files",
			ErrFolderNotEmpty, folderID, childFolders, childFiles)
	}

	if err := dbx.Model(&folder).Update("recycled", true).Error; err != nil {
		return transientErr("recycle folder", err)
	}

	nlog.Logger().Debug().Str("folder", folderID).Msg("folder moved to bin")

	return nil
}
