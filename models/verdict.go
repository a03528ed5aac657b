package models

// Verdict classifies a scenario on the AITA blame spectrum.
type Verdict string

const (
	VerdictNTA  Verdict = "NTA"
	VerdictYTA  Verdict = "YTA"
	VerdictESH  Verdict = "ESH"
	VerdictNAH  Verdict = "NAH"
	VerdictINFO Verdict = "INFO"

	// VerdictError marks a sentinel result recorded when a real judgment
	// could not be obtained or validated. It is never a valid model output.
	VerdictError Verdict = "Error"
)

// ValidVerdicts returns the five verdicts a model reply may carry, in
// canonical order.
func ValidVerdicts() []Verdict {
	return []Verdict{VerdictNTA, VerdictYTA, VerdictESH, VerdictNAH, VerdictINFO}
}

// ParseVerdict maps a raw string onto a valid Verdict. The match is exact;
// casing and whitespace are the model's responsibility per the prompt contract.
func ParseVerdict(s string) (Verdict, bool) {
	switch Verdict(s) {
	case VerdictNTA, VerdictYTA, VerdictESH, VerdictNAH, VerdictINFO:
		return Verdict(s), true
	}
	return "", false
}

// Valid reports whether v is one of the five acceptable model verdicts.
func (v Verdict) Valid() bool {
	_, ok := ParseVerdict(string(v))
	return ok
}

// Tone selects how a verdict should be styled when rendered.
type Tone string

const (
	ToneSuccess Tone = "success" // celebratory
	ToneAlarm   Tone = "alarm"   // alarming
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneFailure Tone = "failure" // sentinel results
)

// VerdictDisplay carries the user-facing metadata for one verdict.
type VerdictDisplay struct {
	Summary string `json:"summary"`
	Tone    Tone   `json:"tone"`
}

var verdictDisplays = map[Verdict]VerdictDisplay{
	VerdictNTA:   {Summary: "You are likely not the asshole.", Tone: ToneSuccess},
	VerdictYTA:   {Summary: "You might be the asshole.", Tone: ToneAlarm},
	VerdictESH:   {Summary: "It seems everyone involved shares some blame.", Tone: ToneWarning},
	VerdictNAH:   {Summary: "No assholes here, just a complex situation.", Tone: ToneInfo},
	VerdictINFO:  {Summary: "More information is needed to make a clear judgment.", Tone: ToneInfo},
	VerdictError: {Summary: "Failed to get a valid verdict.", Tone: ToneFailure},
}

// Display returns the rendering metadata for v. Unknown verdicts fall back to
// the sentinel entry so a malformed value can never crash rendering.
func (v Verdict) Display() VerdictDisplay {
	if d, ok := verdictDisplays[v]; ok {
		return d
	}
	return verdictDisplays[VerdictError]
}
