package holiday

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	holidays := rg.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", middleware.Authorize(authz, "holiday", "read"), handler.GetAll)
		holidays.POST("", middleware.Authorize(authz, "holiday", "create"), handler.Create)
		holidays.PATCH("", middleware.Authorize(authz, "holiday", "update"), handler.Update)
		holidays.DELETE("/:id", middleware.Authorize(authz, "holiday", "delete"), handler.Delete)
	}
}
