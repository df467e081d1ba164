package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/internal/model"
)

// reserveQuota 为用户预占 delta 字节配额. 预占是单条带上限条件的 UPDATE，
// 在存储层原子完成：增量后的占用量会超过上限时整条语句不命中任何行.
// 并发的预占在数据库内串行化，占用量不可能越过上限.
func (s *VaultService) reserveQuota(ctx context.Context, uid string, delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("%w: reserve delta %d", ErrInvalidArgument, delta)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	tx := dbx.Model(&model.User{}).
		Where("id = ? AND total_space_used + ? <= max_space_available", uid, delta).
		UpdateColumn("total_space_used", gorm.Expr("total_space_used + ?", delta))
	if tx.Error != nil {
		return transientErr("reserve quota", tx.Error)
	}

	if tx.RowsAffected == 0 {
		// 未命中：区分用户不存在与配额不足
		var count int64
		if err := dbx.Model(&model.User{}).Where("id = ?", uid).Count(&count).Error; err != nil {
			return transientErr("reserve quota", err)
		}

		if count == 0 {
			return fmt.Errorf("%w: user %s", ErrNotFound, uid)
		}

		return fmt.Errorf("%w: %d bytes requested for user %s", ErrQuotaExceeded, delta, uid)
	}

	return nil
}

// releaseQuota 归还先前预占的配额，用于上传后半程失败时的补偿.
func (s *VaultService) releaseQuota(ctx context.Context, uid string, delta int64) error {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	tx := dbx.Model(&model.User{}).
		Where("id = ?", uid).
		UpdateColumn("total_space_used", gorm.Expr("total_space_used - ?", delta))
	if tx.Error != nil {
		return transientErr("release quota", tx.Error)
	}

	return nil
}
