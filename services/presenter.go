package services

import (
	"fmt"

	"rightorrude/models"
)

// Presentation is the user-facing rendering of one judgment: a fixed summary
// line per verdict, a styling tone, and the score as a [0,1] proportion for
// progress-style display.
type Presentation struct {
	Headline   string  `json:"headline"`
	Tone       string  `json:"tone"`
	Proportion float64 `json:"proportion"`
	Caption    string  `json:"caption"`
}

// Present maps a JudgmentResult to its display form. Pure mapping; works for
// sentinel results too, so even an all-error session renders.
func Present(result models.JudgmentResult) Presentation {
	display := result.Verdict.Display()
	return Presentation{
		Headline:   display.Summary,
		Tone:       string(display.Tone),
		Proportion: float64(result.Score) / 100.0,
		Caption:    fmt.Sprintf("%d%% likelihood of being the Asshole", result.Score),
	}
}
