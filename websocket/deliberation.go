package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rightorrude/models"
	"rightorrude/services"
	"rightorrude/structs"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is one frame in the live deliberation stream. The server emits phase
// markers, one opinion per persona in registry order, and a final frame; on a
// precondition fault it emits a single error frame instead.
type Event struct {
	Type    string                 `json:"type"` // "phase", "opinion", "final", "error"
	Phase   string                 `json:"phase,omitempty"`
	Opinion *models.PersonaOpinion `json:"opinion,omitempty"`
	Final   *structs.FinalView     `json:"final,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// DeliberationHandler streams one full deliberation run over a socket: the
// client sends a JudgeRequest, the server streams progress and closes. Each
// connection gets its own Deliberator so progress hooks never cross sessions.
func DeliberationHandler(newDeliberator func() *services.Deliberator) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("Websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		var req structs.JudgeRequest
		if err := conn.ReadJSON(&req); err != nil {
			writeEvent(conn, Event{Type: "error", Error: "Invalid request payload: " + err.Error()})
			return
		}

		d := newDeliberator()
		d.OnPhase = func(p services.Phase) {
			writeEvent(conn, Event{Type: "phase", Phase: string(p)})
		}
		d.OnOpinion = func(op models.PersonaOpinion) {
			writeEvent(conn, Event{Type: "opinion", Opinion: &op})
		}

		session, err := d.Run(c.Request.Context(), req.Scenario)
		if err != nil {
			writeEvent(conn, Event{Type: "error", Error: err.Error()})
			return
		}

		final := structs.FinalView{
			JudgmentResult: session.Final,
			Presentation:   services.Present(session.Final),
		}
		writeEvent(conn, Event{Type: "final", Final: &final})
	}
}

// writeEvent is only ever called from the connection's own handler goroutine;
// the deliberator invokes its hooks sequentially, so no write lock is needed.
func writeEvent(conn *websocket.Conn, ev Event) {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("Websocket write failed: %v", err)
	}
}
