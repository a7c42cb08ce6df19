package handlers

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with public and tenant routes registered.
func NewRouter(h *HTTPHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Public routes are registered before the tenant middleware.
	h.RegisterPublicRoutes(r)

	// Group routes that require tenant identification and apply middleware
	tenantRoutes := r.Group("/")
	tenantRoutes.Use(h.TenantMiddleware())
	h.RegisterTenantRoutes(tenantRoutes)

	return r
}
