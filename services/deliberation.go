package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"rightorrude/config"
	"rightorrude/models"
)

// Phase of a running deliberation, reported through OnPhase.
type Phase string

const (
	PhasePersonas Phase = "personas"
	PhaseJudge    Phase = "judge"
	PhaseDone     Phase = "done"
)

var (
	// ErrNotConfigured is returned when no model gateway was ever
	// initialized. It blocks the submission before any call is made.
	ErrNotConfigured = errors.New("deliberation: model gateway not configured")
	// ErrEmptyScenario rejects blank submissions before any call is made.
	ErrEmptyScenario = errors.New("deliberation: scenario must not be empty")
)

// sentinelScore is the neutral midpoint recorded for failed calls.
const sentinelScore = 50

// RetryPolicy bounds re-requests of the judge call when its reply fails the
// response contract. Retryable decides which errors are worth re-requesting;
// the prompt never changes between attempts.
type RetryPolicy struct {
	MaxAttempts int
	Retryable   func(error) bool
}

// JudgeRetry is the standard judge policy: retry contract failures only.
// Gateway failures are terminal because a transport fault gains nothing from
// an immediate identical request.
func JudgeRetry(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Retryable: func(err error) bool {
			var ce *ContractError
			return errors.As(err, &ce)
		},
	}
}

// Deliberator drives the two-phase judgment protocol: fan one call out per
// persona, degrade failures to sentinel opinions, then hand the full opinion
// set to a judge call for synthesis. A Deliberator holds no per-session state;
// every Run starts fresh with no memory of prior submissions.
type Deliberator struct {
	gateway  ModelGateway
	personas []models.Persona
	mode     string
	retry    RetryPolicy

	// OnPhase and OnOpinion, when set, receive progress while a run is in
	// flight. OnOpinion fires once per persona, in registry order, after
	// the fan-out has fully resolved.
	OnPhase   func(Phase)
	OnOpinion func(models.PersonaOpinion)
}

// NewDeliberator wires a Deliberator. An empty persona list selects the
// built-in panel; single mode replaces the panel with the one neutral
// reviewer and skips the judge phase entirely.
func NewDeliberator(gateway ModelGateway, personas []models.Persona, mode string, retry RetryPolicy) *Deliberator {
	if len(personas) == 0 {
		personas = DefaultPersonas()
	}
	if mode == "" {
		mode = config.ModePanel
	}
	if mode == config.ModeSingle {
		personas = []models.Persona{NeutralPersona()}
	}
	return &Deliberator{
		gateway:  gateway,
		personas: personas,
		mode:     mode,
		retry:    retry,
	}
}

// Personas returns the registry this Deliberator judges with, in order.
func (d *Deliberator) Personas() []models.Persona {
	return d.personas
}

// Run executes one full deliberation for scenario. The only errors it can
// return are the two precondition faults; once the protocol starts, every
// per-call failure degrades to a sentinel and the session always completes.
func (d *Deliberator) Run(ctx context.Context, scenario string) (*models.DeliberationSession, error) {
	if d.gateway == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(scenario) == "" {
		return nil, ErrEmptyScenario
	}

	d.reportPhase(PhasePersonas)

	// Persona calls are independent, so they run concurrently; each writes
	// to its registry slot, keeping presentation order deterministic no
	// matter which call finishes first.
	opinions := make([]models.PersonaOpinion, len(d.personas))
	var g errgroup.Group
	for i, persona := range d.personas {
		i, persona := i, persona
		g.Go(func() error {
			opinions[i] = d.askPersona(ctx, scenario, persona)
			return nil
		})
	}
	g.Wait()

	if d.OnOpinion != nil {
		for _, op := range opinions {
			d.OnOpinion(op)
		}
	}

	session := &models.DeliberationSession{
		Scenario: scenario,
		Opinions: opinions,
	}

	if d.mode == config.ModeSingle {
		session.Final = opinions[0].JudgmentResult
		d.reportPhase(PhaseDone)
		return session, nil
	}

	d.reportPhase(PhaseJudge)
	session.Final = d.askJudge(ctx, scenario, opinions)
	d.reportPhase(PhaseDone)
	return session, nil
}

func (d *Deliberator) reportPhase(p Phase) {
	if d.OnPhase != nil {
		d.OnPhase(p)
	}
}

func (d *Deliberator) askPersona(ctx context.Context, scenario string, persona models.Persona) models.PersonaOpinion {
	raw, err := d.gateway.Complete(ctx, BuildPersonaPrompt(scenario, persona))
	if err != nil {
		return models.PersonaOpinion{
			PersonaName:    persona.Name,
			JudgmentResult: sentinelResult(fmt.Sprintf("An error occurred: %v", err)),
		}
	}
	result, err := ValidateResponse(raw)
	if err != nil {
		return models.PersonaOpinion{
			PersonaName:    persona.Name,
			JudgmentResult: sentinelResult(contractFailureText(persona.Name, err)),
		}
	}
	return models.PersonaOpinion{PersonaName: persona.Name, JudgmentResult: result}
}

// askJudge issues the synthesis call. Contract failures are retried with the
// identical prompt up to the policy bound; the collected opinions are never
// mutated between attempts.
func (d *Deliberator) askJudge(ctx context.Context, scenario string, opinions []models.PersonaOpinion) models.JudgmentResult {
	prompt := BuildJudgePrompt(scenario, opinions)
	attempts := d.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := d.gateway.Complete(ctx, prompt)
		if err != nil {
			return sentinelResult(fmt.Sprintf("An error occurred while the judge was deliberating: %v", err))
		}
		result, err := ValidateResponse(raw)
		if err == nil {
			return result
		}
		lastErr = err
		if d.retry.Retryable != nil && !d.retry.Retryable(err) {
			break
		}
	}
	return sentinelResult(contractFailureText("Final Judge", lastErr))
}

func sentinelResult(explanation string) models.JudgmentResult {
	return models.JudgmentResult{
		Verdict:     models.VerdictError,
		Score:       sentinelScore,
		Explanation: explanation,
	}
}

// contractFailureText surfaces the raw reply for diagnosis, mirroring how
// contract failures are shown to the user.
func contractFailureText(name string, err error) string {
	var ce *ContractError
	if errors.As(err, &ce) {
		return fmt.Sprintf("%s for %s.\nRaw Response:\n```\n%s\n```", ce.Reason, name, ce.Raw)
	}
	return fmt.Sprintf("Could not parse the response for %s: %v", name, err)
}
