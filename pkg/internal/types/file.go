package types

// UploadFileRequest 上传文件的表单字段，文件本体在 multipart 的 file 字段中.
type UploadFileRequest struct {
	FolderID string `form:"folderId" binding:"omitempty,max=64"`
}
