package user

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authzService middleware.AuthzService,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.Authorize(authzService, "user", "read"), handler.GetAll)
		users.GET("/:id", middleware.Authorize(authzService, "user", "read_self"), handler.GetById)
		users.PATCH("", middleware.Authorize(authzService, "user", "update"), handler.Update)
	}
}
