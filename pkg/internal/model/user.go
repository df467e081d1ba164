// Package model 定义持久化的数据模型：用户、文件夹和文件三个集合.
package model

import (
	"time"
)

// User 用户模型. 主键是外部账号体系分配的稳定 id.
type User struct {
	ID           string `gorm:"primaryKey;size:128" json:"id"`
	DisplayName  string `gorm:"size:255"            json:"displayName"`
	Email        string `gorm:"size:255;index"      json:"email"`
	ProfilePhoto string `gorm:"size:1024"           json:"profilePhoto"`
	// TotalSpaceUsed 当前已占用的字节数，只由文件创建更新；不变量：恒 <= MaxSpaceAvailable
	TotalSpaceUsed int64 `gorm:"not null;default:0" json:"totalSpaceUsed"`
	// MaxSpaceAvailable 存储上限（字节），建号时固定
	MaxSpaceAvailable int64     `gorm:"not null" json:"maxSpaceAvailable"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TableName 集合名固定为 user.
func (User) TableName() string { return "user" }
