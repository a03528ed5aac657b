package routes

import (
	"github.com/gin-gonic/gin"

	"rightorrude/controllers"
)

// SetupJudgmentRoutes registers the deliberation endpoints.
func SetupJudgmentRoutes(router *gin.Engine, jc *controllers.JudgmentController) {
	router.GET("/health", jc.Health)
	router.GET("/personas", jc.Personas)
	router.POST("/judge", jc.Judge)
}
