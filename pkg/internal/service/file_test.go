package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/drivevault/pkg/internal/model"
)

// TestUploadFile 测试上传的完整链路：名称拆分、对象写入、元数据与配额.
func TestUploadFile(t *testing.T) {
	svc, blob := newTestService(t)
	provisionTestUser(t, svc, "alice")

	file, err := svc.UploadFile(context.Background(), "alice", "Quarterly Report.PDF",
		bytes.NewReader([]byte("pdf bytes")), 1024, "")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if file.FileName != "Quarterly Report" {
		t.Errorf("expected file name split before last dot, got %q", file.FileName)
	}

	if file.FileType != "pdf" {
		t.Errorf("expected lower-cased extension, got %q", file.FileType)
	}

	if file.ParentFolder != model.RootFolder {
		t.Errorf("expected root parent, got %q", file.ParentFolder)
	}

	if !strings.HasPrefix(file.Src, "https://blobs.test/alice/") {
		t.Errorf("unexpected src url: %q", file.Src)
	}

	if _, ok := blob.objects["alice/Quarterly Report.PDF"]; !ok {
		t.Errorf("expected blob stored under uid/name, have %v", blob.objects)
	}

	if got := usageOf(t, svc, "alice"); got != 1024 {
		t.Errorf("expected usage 1024, got %d", got)
	}
}

// TestUploadFileNoExtension 测试无扩展名的文件名被拒绝且无任何改动.
func TestUploadFileNoExtension(t *testing.T) {
	svc, blob := newTestService(t)
	provisionTestUser(t, svc, "alice")

	for _, name := range []string{"README", "archive.", ".profile"} {
		_, err := svc.UploadFile(context.Background(), "alice", name,
			bytes.NewReader([]byte("x")), 10, "")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("name %q: expected ErrInvalidArgument, got %v", name, err)
		}
	}

	if got := usageOf(t, svc, "alice"); got != 0 {
		t.Errorf("expected usage unchanged, got %d", got)
	}

	if len(blob.objects) != 0 {
		t.Errorf("expected no blobs stored, have %v", blob.objects)
	}

	if got := countFiles(t, svc, "alice"); got != 0 {
		t.Errorf("expected no file documents, got %d", got)
	}
}

// TestUploadFileInvalidSize 测试非正的文件大小被拒绝.
func TestUploadFileInvalidSize(t *testing.T) {
	svc, _ := newTestService(t)
	provisionTestUser(t, svc, "alice")

	for _, size := range []int64{0, -5} {
		_, err := svc.UploadFile(context.Background(), "alice", "a.txt", bytes.NewReader(nil), size, "")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("size %d: expected ErrInvalidArgument, got %v", size, err)
		}
	}
}

// TestUploadFileUserNotFound 测试未知用户上传.
func TestUploadFileUserNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadFile(context.Background(), "nobody", "a.txt", bytes.NewReader([]byte("x")), 10, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestUploadFileQuotaBoundary 测试恰好用满上限可以通过，再多一个字节被拒绝.
func TestUploadFileQuotaBoundary(t *testing.T) {
	svc, _ := newTestService(t)
	provisionTestUser(t, svc, "alice")

	// 恰好填满
	uploadTestFile(t, svc, "alice", "fill.bin", testQuota, "")

	if got := usageOf(t, svc, "alice"); got != testQuota {
		t.Errorf("expected usage %d, got %d", testQuota, got)
	}

	// 超出一个字节
	_, err := svc.UploadFile(context.Background(), "alice", "one.bin", bytes.NewReader([]byte("x")), 1, "")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}

	if got := usageOf(t, svc, "alice"); got != testQuota {
		t.Errorf("usage must be unchanged after rejection, got %d", got)
	}

	if got := countFiles(t, svc, "alice"); got != 1 {
		t.Errorf("expected single file document, got %d", got)
	}
}

// TestUploadFileQuotaScenario 端到端：500MB 配额，300MB 成功后 250MB 被拒.
func TestUploadFileQuotaScenario(t *testing.T) {
	svc, _ := newTestService(t)
	provisionTestUser(t, svc, "bob")

	uploadTestFile(t, svc, "bob", "video.mp4", 300_000_000, "")

	if got := usageOf(t, svc, "bob"); got != 300_000_000 {
		t.Fatalf("expected usage 300000000, got %d", got)
	}

	_, err := svc.UploadFile(context.Background(), "bob", "backup.zip",
		bytes.NewReader([]byte("zip")), 250_000_000, "")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}

	if got := usageOf(t, svc, "bob"); got != 300_000_000 {
		t.Errorf("usage must stay at 300000000, got %d", got)
	}
}

// TestUploadFileBlobFailure 测试对象写入失败时配额被归还.
func TestUploadFileBlobFailure(t *testing.T) {
	svc, blob := newTestService(t)
	provisionTestUser(t, svc, "alice")

	blob.failPut = true

	_, err := svc.UploadFile(context.Background(), "alice", "a.txt", bytes.NewReader([]byte("x")), 10, "")
	if !errors.Is(err, ErrTransient) {
		t.Errorf("expected ErrTransient, got %v", err)
	}

	if got := usageOf(t, svc, "alice"); got != 0 {
		t.Errorf("expected reserved quota released, usage %d", got)
	}

	if got := countFiles(t, svc, "alice"); got != 0 {
		t.Errorf("expected no file documents, got %d", got)
	}
}

// TestMoveFileToBinKeepsQuota 测试软删除保留配额占用.
func TestMoveFileToBinKeepsQuota(t *testing.T) {
	svc, _ := newTestService(t)
	provisionTestUser(t, svc, "alice")

	file := uploadTestFile(t, svc, "alice", "notes.txt", 2048, "")

	if err := svc.MoveFileToBin(context.Background(), file.ID); err != nil {
		t.Fatalf("move to bin: %v", err)
	}

	var got model.File
	if err := svc.dbClient.GetDB().First(&got, "id = ?", file.ID).Error; err != nil {
		t.Fatalf("read file: %v", err)
	}

	if !got.Recycled {
		t.Error("expected recycled file")
	}

	if usage := usageOf(t, svc, "alice"); usage != 2048 {
		t.Errorf("soft delete must not change usage, got %d", usage)
	}

	if err := svc.MoveFileToBin(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestToggleFileStarred 测试文件星标翻转两次回到原值.
func TestToggleFileStarred(t *testing.T) {
	svc, _ := newTestService(t)
	provisionTestUser(t, svc, "alice")

	file := uploadTestFile(t, svc, "alice", "pic.jpg", 64, "")

	once, err := svc.ToggleFileStarred(context.Background(), file.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}

	if !once.Starred {
		t.Error("expected starred after first toggle")
	}

	twice, err := svc.ToggleFileStarred(context.Background(), file.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if twice.Starred {
		t.Error("expected original value after double toggle")
	}

	if _, err := svc.ToggleFileStarred(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
