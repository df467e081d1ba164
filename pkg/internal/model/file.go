package model

import (
	"time"
)

// File 文件模型. SizeInBytes 在文件存续期间恰好向所有者配额贡献一次，
// 软删除（Recycled=true）不释放配额.
type File struct {
	ID  string `gorm:"primaryKey;size:64" json:"id"`
	UID string `gorm:"size:128;index"     json:"uid"`
	// FileName 不含扩展名的文件名
	FileName string `gorm:"size:512" json:"fileName"`
	// FileType 扩展名，统一小写
	FileType    string `gorm:"size:64;index" json:"fileType"`
	SizeInBytes int64  `gorm:"not null"      json:"sizeInBytes"`
	// ParentFolder 所属文件夹 id 或 RootFolder 哨兵
	ParentFolder string `gorm:"size:64;index" json:"parentFolder"`
	// Src 对象存储的下载 URL
	Src       string    `gorm:"size:2048"     json:"src"`
	Recycled  bool      `gorm:"index"         json:"recycled"`
	Starred   bool      `json:"starred"`
	CreatedAt time.Time `gorm:"index"         json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName 集合名固定为 file.
func (File) TableName() string { return "file" }
