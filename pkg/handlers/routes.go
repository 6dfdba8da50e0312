package handlers

import (
	"todo-app/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all routes registered. Register and
// login are open; everything else sits behind the auth middleware.
func Router(h *Handlers, a *auth.Auth) *gin.Engine {
	// Request bodies have an explicit schema per endpoint; unknown fields
	// (such as a client-supplied userId) are rejected, not ignored.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	protected := r.Group("/")
	protected.Use(a.Middleware())
	{
		protected.POST("/add-list", h.AddList)
		protected.GET("/get-lists", h.GetLists)
		protected.PUT("/edit-list/:id", h.EditList)
		protected.DELETE("/remove-list/:id", h.RemoveList)
	}

	return r
}
