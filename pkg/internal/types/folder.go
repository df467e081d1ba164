package types

import (
	"github.com/yeisme/drivevault/pkg/internal/model"
)

// CreateFolderRequest 创建文件夹请求. ParentFolder 为空表示挂在用户根目录下.
type CreateFolderRequest struct {
	Name         string `json:"name"         binding:"required"`
	ParentFolder string `json:"parentFolder" binding:"omitempty,max=64"`
}

// RenameFolderRequest 重命名文件夹请求.
type RenameFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// DriveListResponse 用户网盘的活跃内容：未回收的文件夹与最近的未回收文件.
type DriveListResponse struct {
	Folders []model.Folder `json:"folders"`
	Files   []model.File   `json:"files"`
}
