package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/storage/db"
)

// fakeBlob 内存对象存储实现，用于测试.
type fakeBlob struct {
	objects map[string][]byte
	failPut bool
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{objects: make(map[string][]byte)}
}

func (f *fakeBlob) Put(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) error {
	if f.failPut {
		return errors.New("connection reset")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	f.objects[objectKey] = data

	return nil
}

func (f *fakeBlob) URLFor(_ context.Context, objectKey string) (string, error) {
	return "https://blobs.test/" + objectKey, nil
}

// testQuota 测试用的配额上限.
const testQuota int64 = 500_000_000

// newTestService 构建基于内存 SQLite 和 fakeBlob 的服务实例.
func newTestService(t *testing.T) (*VaultService, *fakeBlob) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库的每个连接都是独立数据库，限制连接池为单连接
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&model.User{}, &model.Folder{}, &model.File{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	blob := newFakeBlob()

	return &VaultService{
		blob:     blob,
		dbClient: &db.Client{DB: gdb},
		maxSpace: testQuota,
	}, blob
}

// provisionTestUser 开通一个测试用户.
func provisionTestUser(t *testing.T, svc *VaultService, uid string) *model.User {
	t.Helper()

	user, err := svc.ProvisionUser(context.Background(), uid, nil)
	if err != nil {
		t.Fatalf("provision user %s: %v", uid, err)
	}

	return user
}

// uploadTestFile 上传一个声明大小为 size 的文件，内容无关紧要.
func uploadTestFile(t *testing.T, svc *VaultService, uid, name string, size int64, folderID string) *model.File {
	t.Helper()

	file, err := svc.UploadFile(context.Background(), uid, name, bytes.NewReader([]byte("payload")), size, folderID)
	if err != nil {
		t.Fatalf("upload %s for %s: %v", name, uid, err)
	}

	return file
}

// usageOf 直接读取用户当前占用量.
func usageOf(t *testing.T, svc *VaultService, uid string) int64 {
	t.Helper()

	var user model.User
	if err := svc.dbClient.GetDB().First(&user, "id = ?", uid).Error; err != nil {
		t.Fatalf("read user %s: %v", uid, err)
	}

	return user.TotalSpaceUsed
}

// countFiles 统计 file 集合中用户的记录数.
func countFiles(t *testing.T, svc *VaultService, uid string) int64 {
	t.Helper()

	var count int64
	if err := svc.dbClient.GetDB().Model(&model.File{}).Where("uid = ?", uid).Count(&count).Error; err != nil {
		t.Fatalf("count files: %v", err)
	}

	return count
}
