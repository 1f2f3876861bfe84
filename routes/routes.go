package routes

import (
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/controllers"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, svc *services.IssueService) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	issueCtrl := controllers.NewIssueController(svc)

	api := r.Group("/api/v1")
	{
		issues := api.Group("/issues")
		{
			issues.GET("", issueCtrl.List)
			issues.POST("", issueCtrl.Create)
			issues.GET("/:id", issueCtrl.Detail)
			issues.PUT("/:id", issueCtrl.Update)
			issues.DELETE("/:id", issueCtrl.Delete)
		}
	}
}
