package models

// Persona is a named, fixed instruction profile that colors how the model is
// asked to judge a scenario. The set of personas is configuration data; the
// protocol does not depend on which ones are registered.
type Persona struct {
	Name        string `json:"name" yaml:"name"`
	Instruction string `json:"instruction" yaml:"instruction"`
}

// JudgmentResult is the atomic unit produced by every model call, persona and
// judge alike. Score is always inside [0,100]; Explanation is never empty, a
// placeholder is substituted when the model offers none.
type JudgmentResult struct {
	Verdict     Verdict `json:"verdict"`
	Score       int     `json:"score"`
	Explanation string  `json:"explanation"`
}

// PersonaOpinion is one persona's JudgmentResult, tagged with its owner.
type PersonaOpinion struct {
	PersonaName    string `json:"personaName"`
	JudgmentResult
}

// DeliberationSession is one complete run of the protocol for one submitted
// scenario. Opinions are held in persona-registry order. Sessions are
// ephemeral: built for a single submission, discarded after rendering.
type DeliberationSession struct {
	Scenario string           `json:"scenario"`
	Opinions []PersonaOpinion `json:"opinions"`
	Final    JudgmentResult   `json:"final"`
}
