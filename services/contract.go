package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"rightorrude/models"
)

// ContractError reports a model reply that failed the response contract.
// Raw preserves the reply verbatim for diagnostic display.
type ContractError struct {
	Reason string
	Raw    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("response contract: %s", e.Reason)
}

const missingExplanation = "No explanation provided."

// ValidateResponse decodes raw model output into a JudgmentResult. It accepts
// only a single JSON object carrying exactly the expected shape: a "verdict"
// string from the five valid tags, an integer "score", and an "explanation"
// string. Scores outside [0,100] are clamped; everything else invalid is a
// *ContractError. Nothing is ever guessed on behalf of a malformed reply.
func ValidateResponse(raw string) (models.JudgmentResult, error) {
	fail := func(reason string) (models.JudgmentResult, error) {
		return models.JudgmentResult{}, &ContractError{Reason: reason, Raw: raw}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return fail(fmt.Sprintf("failed to decode JSON response: %v", err))
	}
	if dec.More() {
		return fail("unexpected content after the JSON object")
	}

	verdictRaw, ok := data["verdict"]
	if !ok {
		return fail("missing \"verdict\" field")
	}
	verdictStr, ok := verdictRaw.(string)
	if !ok {
		return fail("\"verdict\" must be a string")
	}
	verdict, ok := models.ParseVerdict(verdictStr)
	if !ok {
		return fail(fmt.Sprintf("verdict %q is not one of NTA, YTA, ESH, NAH, INFO", verdictStr))
	}

	scoreRaw, ok := data["score"]
	if !ok {
		return fail("missing \"score\" field")
	}
	scoreNum, ok := scoreRaw.(json.Number)
	if !ok {
		return fail("\"score\" must be an integer")
	}
	score, err := scoreNum.Int64()
	if err != nil {
		return fail(fmt.Sprintf("\"score\" must be an integer, got %s", scoreNum))
	}

	explRaw, ok := data["explanation"]
	if !ok {
		return fail("missing \"explanation\" field")
	}
	explanation, ok := explRaw.(string)
	if !ok {
		return fail("\"explanation\" must be a string")
	}
	if explanation == "" {
		explanation = missingExplanation
	}

	return models.JudgmentResult{
		Verdict:     verdict,
		Score:       clampScore(int(score)),
		Explanation: explanation,
	}, nil
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
