// Package router 管理路由配置，将路径绑定到 handle 包提供的处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/handle"
)

// Register 将全部业务路由绑定到传入的 gin 路由组.
//
// 绑定的路径（假定上层会用 v1 := e.Group("/api/v1")）：
//
//	POST   /users              -> ProvisionUser
//	GET    /users/:uid         -> GetProfile
//	GET    /drive              -> ListDrive
//	POST   /folders            -> CreateFolder
//	PUT    /folders/:id/name   -> RenameFolder
//	POST   /folders/:id/star   -> StarFolder
//	POST   /folders/:id/bin    -> BinFolder
//	POST   /files              -> UploadFile
//	POST   /files/:id/star     -> StarFile
//	POST   /files/:id/bin      -> BinFile
func Register(group *gin.RouterGroup) {
	users := group.Group("/users")
	{
		users.POST("", handle.ProvisionUser)
		users.GET("/:uid", handle.GetProfile)
	}

	group.GET("/drive", handle.ListDrive)

	folders := group.Group("/folders")
	{
		folders.POST("", handle.CreateFolder)
		folders.PUT("/:id/name", handle.RenameFolder)
		folders.POST("/:id/star", handle.StarFolder)
		folders.POST("/:id/bin", handle.BinFolder)
	}

	files := group.Group("/files")
	{
		files.POST("", handle.UploadFile)
		files.POST("/:id/star", handle.StarFile)
		files.POST("/:id/bin", handle.BinFile)
	}
}
