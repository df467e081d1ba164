package service

import (
	"errors"
	"fmt"
)

// 错误分类哨兵. 调用方通过 errors.Is 判断类别，错误文本携带具体上下文.
var (
	// ErrNotFound 引用的用户/文件夹/文件不存在.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists 重复开通账号.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument 入参非法（trim 后为空的名称、无扩展名的文件名等）.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrQuotaExceeded 上传将超出存储上限.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrFolderNotEmpty 移入回收站的文件夹仍有直接子级.
	ErrFolderNotEmpty = errors.New("folder not empty")
	// ErrTransient 存储适配器的临时故障，调用方可重试.
	ErrTransient = errors.New("transient storage failure")
	// ErrInconsistent 配额补偿失败，已占用量与实际存储不一致，调用方应触发对账而不是盲目重试.
	ErrInconsistent = errors.New("storage accounting inconsistent")
)

// transientErr 将底层适配器错误包装为 ErrTransient 类别，保留原错误链.
func transientErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
}
