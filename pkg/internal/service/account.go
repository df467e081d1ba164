package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/configs"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
	nlog "github.com/yeisme/drivevault/pkg/log"
)

// ProvisionUser 为外部账号开通存储：占用量归零，写入固定配额上限.
// 重复开通返回 ErrAlreadyExists（显式策略，不做幂等 upsert）.
func (s *VaultService) ProvisionUser(ctx context.Context, uid string, req *types.ProvisionUserRequest) (*model.User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, fmt.Errorf("%w: user id is empty", ErrInvalidArgument)
	}

	ceiling := s.maxSpace
	if ceiling <= 0 {
		ceiling = configs.DefaultMaxSpaceAvailable
	}

	user := &model.User{
		ID:                uid,
		TotalSpaceUsed:    0,
		MaxSpaceAvailable: ceiling,
	}
	if req != nil {
		user.DisplayName = req.DisplayName
		user.Email = req.Email
		user.ProfilePhoto = req.ProfilePhoto
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var count int64
	if err := dbx.Model(&model.User{}).Where("id = ?", uid).Count(&count).Error; err != nil {
		return nil, transientErr("check user", err)
	}

	if count > 0 {
		return nil, fmt.Errorf("%w: user %s", ErrAlreadyExists, uid)
	}

	if err := dbx.Create(user).Error; err != nil {
		// 并发开通时主键冲突也归为已存在
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %s", ErrAlreadyExists, uid)
		}

		return nil, transientErr("create user", err)
	}

	nlog.Logger().Info().Str("user", uid).Int64("max_space", ceiling).Msg("user provisioned")

	return user, nil
}

// GetProfile 读取用户档案.
func (s *VaultService) GetProfile(ctx context.Context, uid string) (*model.User, error) {
	var user model.User

	dbx := s.dbClient.GetDB().WithContext(ctx)
	if err := dbx.First(&user, "id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
		}

		return nil, transientErr("read user", err)
	}

	return &user, nil
}
