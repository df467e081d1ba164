package configs

import (
	"github.com/spf13/viper"
)

const (
	// DefaultMaxSpaceAvailable 每个新用户的默认存储配额（字节）.
	DefaultMaxSpaceAvailable int64 = 500_000_000
)

// QuotaConfig 用户存储配额配置.
type QuotaConfig struct {
	// MaxSpaceAvailable 新用户的存储上限（字节），建号后不再变更.
	MaxSpaceAvailable int64 `mapstructure:"max_space_available" rule:"min=1"`
}

// setDefaults 设置配额配置的默认值.
func (c *QuotaConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("quota.max_space_available", DefaultMaxSpaceAvailable)
}
