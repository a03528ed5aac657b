package services

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"rightorrude/models"
)

func TestValidateResponseCanonical(t *testing.T) {
	result, err := ValidateResponse(`{"verdict":"NTA","score":10,"explanation":"fine"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.JudgmentResult{Verdict: models.VerdictNTA, Score: 10, Explanation: "fine"}
	if result != want {
		t.Errorf("got %+v, want %+v", result, want)
	}
}

func TestValidateResponseClampsScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{-500, 0},
		{-1, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{101, 100},
		{10000, 100},
	}
	for _, tt := range tests {
		raw := `{"verdict":"YTA","score":` + strconv.Itoa(tt.score) + `,"explanation":"x"}`
		result, err := ValidateResponse(raw)
		if err != nil {
			t.Fatalf("score %d: unexpected error: %v", tt.score, err)
		}
		if result.Score != tt.want {
			t.Errorf("score %d: got %d, want %d", tt.score, result.Score, tt.want)
		}
	}
}

func TestValidateResponseRejectsUnknownVerdicts(t *testing.T) {
	for _, verdict := range []string{"GTA", "nta", "Nta", "", "Error", "NTA ", "MAYBE"} {
		raw := `{"verdict":"` + verdict + `","score":10,"explanation":"x"}`
		_, err := ValidateResponse(raw)
		var ce *ContractError
		if !errors.As(err, &ce) {
			t.Errorf("verdict %q: expected ContractError, got %v", verdict, err)
		}
	}
}

func TestValidateResponseRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no explanation", `{"verdict":"YTA","score":90}`},
		{"no verdict", `{"score":90,"explanation":"x"}`},
		{"no score", `{"verdict":"YTA","explanation":"x"}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateResponse(tt.raw)
			var ce *ContractError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ContractError, got %v", err)
			}
		})
	}
}

func TestValidateResponseRejectsMalformedSyntax(t *testing.T) {
	raw := "not json"
	_, err := ValidateResponse(raw)
	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ContractError, got %v", err)
	}
	if ce.Raw != raw {
		t.Errorf("ContractError should carry the original text verbatim, got %q", ce.Raw)
	}
}

func TestValidateResponseRejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"float score", `{"verdict":"YTA","score":90.5,"explanation":"x"}`},
		{"string score", `{"verdict":"YTA","score":"90","explanation":"x"}`},
		{"numeric verdict", `{"verdict":7,"score":90,"explanation":"x"}`},
		{"object explanation", `{"verdict":"YTA","score":90,"explanation":{}}`},
		{"array body", `[{"verdict":"YTA","score":90,"explanation":"x"}]`},
		{"trailing content", `{"verdict":"YTA","score":90,"explanation":"x"} extra`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateResponse(tt.raw)
			var ce *ContractError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ContractError, got %v", err)
			}
			if ce.Raw != tt.raw {
				t.Errorf("ContractError.Raw = %q, want original text", ce.Raw)
			}
		})
	}
}

func TestValidateResponseSubstitutesEmptyExplanation(t *testing.T) {
	result, err := ValidateResponse(`{"verdict":"NAH","score":30,"explanation":""}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Explanation == "" {
		t.Error("explanation should never be empty on a valid result")
	}
}

func TestValidateResponseIsDeterministic(t *testing.T) {
	raw := `{"verdict":"ESH","score":60,"explanation":"everyone was rude"}`
	first, err1 := ValidateResponse(raw)
	second, err2 := ValidateResponse(raw)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if first != second {
		t.Errorf("same input produced different results: %+v vs %+v", first, second)
	}
}

func TestContractErrorMessageIncludesReason(t *testing.T) {
	_, err := ValidateResponse(`{"verdict":"GTA","score":1,"explanation":"x"}`)
	if err == nil || !strings.Contains(err.Error(), "GTA") {
		t.Errorf("error should name the offending verdict, got %v", err)
	}
}
