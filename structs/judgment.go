package structs

import (
	"rightorrude/models"
	"rightorrude/services"
)

// JudgeRequest is the submission payload. Scenario is the only input; it is
// free text and must be non-empty.
type JudgeRequest struct {
	Scenario string `json:"scenario" binding:"required"`
}

// FinalView is the synthesized verdict plus its presentation fields.
type FinalView struct {
	models.JudgmentResult
	services.Presentation
}

// JudgeResponse is one rendered deliberation session: the opinions in persona
// registry order, then the final judgment.
type JudgeResponse struct {
	Scenario string                  `json:"scenario"`
	Opinions []models.PersonaOpinion `json:"opinions"`
	Final    FinalView               `json:"final"`
}

// NewJudgeResponse renders a completed session.
func NewJudgeResponse(session *models.DeliberationSession) JudgeResponse {
	return JudgeResponse{
		Scenario: session.Scenario,
		Opinions: session.Opinions,
		Final: FinalView{
			JudgmentResult: session.Final,
			Presentation:   services.Present(session.Final),
		},
	}
}
