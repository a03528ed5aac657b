package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"rightorrude/models"
	"rightorrude/services"
	"rightorrude/structs"
)

// DeliberationRunner is the slice of the deliberator the controller needs.
type DeliberationRunner interface {
	Run(ctx context.Context, scenario string) (*models.DeliberationSession, error)
	Personas() []models.Persona
}

// JudgmentController serves the deliberation endpoints.
type JudgmentController struct {
	runner     DeliberationRunner
	configured bool
}

// NewJudgmentController wires the controller. configured reflects whether a
// model gateway was initialized at startup; it is read-only afterwards.
func NewJudgmentController(runner DeliberationRunner, configured bool) *JudgmentController {
	return &JudgmentController{runner: runner, configured: configured}
}

// Judge runs one full deliberation for the submitted scenario.
func (jc *JudgmentController) Judge(c *gin.Context) {
	var req structs.JudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Please describe your scenario first."})
		return
	}

	session, err := jc.runner.Run(c.Request.Context(), req.Scenario)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyScenario):
			c.JSON(400, gin.H{"error": "Please describe your scenario first."})
		case errors.Is(err, services.ErrNotConfigured):
			c.JSON(503, gin.H{"error": "Gemini API Key not found or configuration failed. Set gemini.apiKey in the config file or the GEMINI_API_KEY environment variable."})
		default:
			log.Printf("Deliberation failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to judge scenario: " + err.Error()})
		}
		return
	}

	c.JSON(200, structs.NewJudgeResponse(session))
}

// Personas lists the reviewer registry so clients can render one collapsible
// section per persona, in order.
func (jc *JudgmentController) Personas(c *gin.Context) {
	c.JSON(200, gin.H{"personas": jc.runner.Personas()})
}

// Health reports liveness and whether the gateway ever initialized, so a
// client can surface the configuration fault before accepting a submission.
func (jc *JudgmentController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "gatewayConfigured": jc.configured})
}
