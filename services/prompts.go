package services

import (
	"fmt"
	"strings"

	"rightorrude/models"
)

// BuildPersonaPrompt renders the prompt sent to the model for one reviewer.
// Pure function of its inputs; identical inputs render identical text.
func BuildPersonaPrompt(scenario string, persona models.Persona) string {
	return fmt.Sprintf(`Analyze the following scenario based on the AITA (Am I The Asshole?) framework.
Adopt the persona of '%s' with the following instructions: %s

Respond ONLY with a valid JSON object containing the following keys:
- "verdict": A string, one of "NTA", "YTA", "ESH", "NAH", "INFO".
- "score": An integer between 0 and 100 (0=NTA, 100=YTA).
- "explanation": A string explaining the reasoning for the verdict and score from your persona's viewpoint. Keep this explanation concise, ideally around two sentences. If the verdict is "YTA", the explanation should be significantly harsher and more direct in its criticism of the user's actions from your persona's viewpoint.

Ensure the output is nothing but the JSON object itself.

Scenario:
%s`, persona.Name, persona.Instruction, scenario)
}

// BuildJudgePrompt renders the final-judge prompt from the scenario and every
// collected opinion, in their recorded order. Sentinel opinions are exposed
// verbatim so the judge (and the user) can see that a sub-judgment failed.
func BuildJudgePrompt(scenario string, opinions []models.PersonaOpinion) string {
	var sb strings.Builder
	sb.WriteString(`You are the final judge in an AITA (Am I The Asshole?) scenario.
You have received the following scenario and several opinions from different reviewers.
Your task is to synthesize these opinions, the original scenario, and provide a final, objective verdict, score, and explanation.
Do not just average the results; provide a considered judgment based on the evidence and arguments presented by the reviewers.
If reviewers disagree, analyze the points of disagreement and determine which perspective is more convincing or applicable.

Original Scenario:
`)
	sb.WriteString(scenario)
	sb.WriteString("\n\nReviewer Opinions:\n")
	for _, op := range opinions {
		fmt.Fprintf(&sb, "\n--- %s ---\n", op.PersonaName)
		fmt.Fprintf(&sb, "Verdict: %s\n", op.Verdict)
		fmt.Fprintf(&sb, "Score: %d\n", op.Score)
		fmt.Fprintf(&sb, "Explanation: %s\n", op.Explanation)
	}
	sb.WriteString(`
Based on the above, provide your final judgment.
Respond ONLY with a valid JSON object containing the following keys:
- "verdict": A string, one of "NTA", "YTA", "ESH", "NAH", "INFO".
- "score": An integer between 0 and 100 (0=NTA, 100=YTA).
- "explanation": A string explaining your final reasoning, referencing the reviewer opinions where relevant. Your explanation should be objective and comprehensive.

Ensure the output is nothing but the JSON object itself.`)
	return sb.String()
}
