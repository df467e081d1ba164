// Package api 将业务路由组注册到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/router"
)

// RegisterGroup 注册存储核心相关的路由组到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	v1 := e.Group("/api/v1")

	router.Register(v1)
	router.RegisterHealthCheckRoute(v1)

	return e
}
