package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/drivevault/pkg/configs"
)

// writeConfig 在临时目录写入一个 config.yaml 并返回目录路径.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return dir
}

// TestInitConfigDefaults 测试空配置文件加载后默认值通过校验.
func TestInitConfigDefaults(t *testing.T) {
	dir := writeConfig(t, "server:\n  debug: true\n")

	if err := configs.InitConfig(dir); err != nil {
		t.Fatalf("init config: %v", err)
	}

	cfg := configs.GetConfig()
	if cfg.Quota.MaxSpaceAvailable != configs.DefaultMaxSpaceAvailable {
		t.Errorf("expected default quota %d, got %d",
			configs.DefaultMaxSpaceAvailable, cfg.Quota.MaxSpaceAvailable)
	}

	if cfg.Server.Port != configs.DefaultPort {
		t.Errorf("expected default port %d, got %d", configs.DefaultPort, cfg.Server.Port)
	}
}

// TestInitConfigInvalidQuota 测试非正的配额上限被拒绝.
func TestInitConfigInvalidQuota(t *testing.T) {
	dir := writeConfig(t, "quota:\n  max_space_available: -5\n")

	if err := configs.InitConfig(dir); err == nil {
		t.Error("expected error for non-positive quota, got nil")
	}
}

// TestInitConfigInvalidPort 测试越界端口被拒绝.
func TestInitConfigInvalidPort(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 70000\n")

	if err := configs.InitConfig(dir); err == nil {
		t.Error("expected error for out-of-range port, got nil")
	}
}
