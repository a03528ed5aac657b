package websocket

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rightorrude/config"
	"rightorrude/services"
)

type scriptedGateway struct{}

func (scriptedGateway) Complete(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "You are the final judge") {
		return `{"verdict":"NAH","score":35,"explanation":"final"}`, nil
	}
	return `{"verdict":"NTA","score":10,"explanation":"ok"}`, nil
}

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws/judge", DeliberationHandler(func() *services.Deliberator {
		return services.NewDeliberator(scriptedGateway{}, nil, config.ModePanel, services.JudgeRetry(3))
	}))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/judge"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestDeliberationStreamEmitsOpinionsThenFinal(t *testing.T) {
	conn := dialTestServer(t)
	if err := conn.WriteJSON(map[string]string{"scenario": "I did a thing"}); err != nil {
		t.Fatalf("sending request: %v", err)
	}

	var opinionNames []string
	var phases []string
	sawFinal := false
	for !sawFinal {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("reading event: %v", err)
		}
		switch ev.Type {
		case "phase":
			phases = append(phases, ev.Phase)
		case "opinion":
			opinionNames = append(opinionNames, ev.Opinion.PersonaName)
		case "final":
			sawFinal = true
			if ev.Final == nil || ev.Final.Verdict != "NAH" {
				t.Errorf("unexpected final frame: %+v", ev.Final)
			}
			if ev.Final.Headline == "" {
				t.Error("final frame missing presentation")
			}
		case "error":
			t.Fatalf("unexpected error frame: %s", ev.Error)
		}
	}

	personas := services.DefaultPersonas()
	if len(opinionNames) != len(personas) {
		t.Fatalf("expected %d opinion frames, got %d", len(personas), len(opinionNames))
	}
	for i, p := range personas {
		if opinionNames[i] != p.Name {
			t.Errorf("opinion frame %d: got %q, want %q", i, opinionNames[i], p.Name)
		}
	}

	wantPhases := fmt.Sprintf("%v", []string{"personas", "judge", "done"})
	if fmt.Sprintf("%v", phases) != wantPhases {
		t.Errorf("phases = %v, want %s", phases, wantPhases)
	}
}

func TestDeliberationStreamReportsEmptyScenario(t *testing.T) {
	conn := dialTestServer(t)
	if err := conn.WriteJSON(map[string]string{"scenario": "   "}); err != nil {
		t.Fatalf("sending request: %v", err)
	}

	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("reading event: %v", err)
	}
	// The fan-out never starts, so the first frame after the phase marker
	// cannot be an opinion. Skip phase frames and expect an error frame.
	for ev.Type == "phase" {
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("reading event: %v", err)
		}
	}
	if ev.Type != "error" {
		t.Fatalf("expected error frame, got %+v", ev)
	}
	if !strings.Contains(ev.Error, "scenario") {
		t.Errorf("error should mention the scenario: %q", ev.Error)
	}
}
