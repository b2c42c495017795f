package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Lideeyah/Haid/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Identity issuance (requires API key authentication, registration desks)
		v1.POST("/identities", middleware.APIKeyAuth(authCfg), handler.IssueIdentity)

		// Identity resolution (public read access)
		v1.GET("/identities/:did", handler.GetIdentity)

		// Event administration (requires API key authentication)
		v1.POST("/events", middleware.APIKeyAuth(authCfg), handler.CreateEvent)
		v1.POST("/events/:id/activate", middleware.APIKeyAuth(authCfg), handler.ActivateEvent)
		v1.POST("/events/:id/close", middleware.APIKeyAuth(authCfg), handler.CloseEvent)
		v1.POST("/events/:id/agents", middleware.APIKeyAuth(authCfg), handler.AssignAgent)

		// Event read access (public)
		v1.GET("/events/:id", handler.GetEvent)

		// Scan submission (requires authentication; JWT subject names the agent)
		v1.POST("/scans", middleware.Auth(authCfg), handler.SubmitScan)

		// Claim read access (public)
		v1.GET("/claims/:id", handler.GetClaim)
		v1.GET("/claims", handler.ListClaims)
		v1.GET("/claims/:id/verification", handler.VerifyClaim)

		// Audit reconciliation (requires authentication)
		v1.GET("/audit/reconcile", middleware.Auth(authCfg), handler.Reconcile)
	}
}
