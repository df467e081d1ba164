package model

import (
	"time"
)

// RootFolder 每个用户隐式根目录的哨兵值，parent_folder 指向它表示顶层条目.
const RootFolder = "root"

// Folder 文件夹模型. 文件夹构成以用户根目录为根的森林，软删除通过 Recycled 标记实现.
type Folder struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	UID  string `gorm:"size:128;index"     json:"uid"`
	Name string `gorm:"size:512"           json:"name"`
	// ParentFolder 父文件夹 id 或 RootFolder 哨兵
	ParentFolder string    `gorm:"size:64;index" json:"parentFolder"`
	Recycled     bool      `gorm:"index"         json:"recycled"`
	Starred      bool      `json:"starred"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName 集合名固定为 folder.
func (Folder) TableName() string { return "folder" }
