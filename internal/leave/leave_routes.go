package leave

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService, rdb *redis.Client) {
	leaves := rg.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.Authorize(authz, "leave", "read"), handler.GetAll)
		leaves.GET("/employee/:id", middleware.Authorize(authz, "leave", "read_self"), handler.GetByEmployee)
		leaves.POST("", middleware.Authorize(authz, "leave", "create"), middleware.Idempotency(rdb), handler.Create)
		leaves.PATCH("", middleware.Authorize(authz, "leave", "decide"), handler.Decide)
	}
}
