// Package types 定义 HTTP 层的请求与响应结构.
package types

// ProvisionUserRequest 开通用户请求. 配额上限由服务端配置决定，不由客户端指定.
type ProvisionUserRequest struct {
	DisplayName  string `json:"displayName"  binding:"omitempty,max=255"`
	Email        string `json:"email"        binding:"omitempty,email"`
	ProfilePhoto string `json:"profilePhoto" binding:"omitempty,url"`
}
