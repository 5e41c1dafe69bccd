package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
	"bar-trivia-service/internal/questions"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades HTTP requests to websockets and routes inbound
// operations to the game service, fanning resulting events out via the hub.
type WSHandler struct {
	service  *app.GameService
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService, hub *Hub) *WSHandler {
	return &WSHandler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type createPayload struct {
	DisplayName string      `json:"displayName"`
	Mode        domain.Mode `json:"gameMode"`
	Genre       string      `json:"genre"`
}

type attachHostPayload struct {
	JoinCode string `json:"joinCode"`
	HostID   string `json:"hostId"`
}

type joinPayload struct {
	JoinCode    string `json:"joinCode"`
	DisplayName string `json:"displayName"`
}

type loadPayload struct {
	JoinCode string `json:"joinCode"`
	Count    int    `json:"count"`
}

type addQuestionPayload struct {
	JoinCode string           `json:"joinCode"`
	Question questions.Record `json:"question"`
}

type codePayload struct {
	JoinCode string `json:"joinCode"`
}

type answerPayload struct {
	JoinCode string `json:"joinCode"`
	TeamID   string `json:"teamId"`
	Answer   string `json:"answer"`
}

type claimPayload struct {
	JoinCode string `json:"joinCode"`
	TeamID   string `json:"teamId"`
}

type ackPayload map[string]any

func ackOK(fields ackPayload) ackPayload {
	ack := ackPayload{"success": true}
	for k, v := range fields {
		ack[k] = v
	}
	return ack
}

func ackErr(err error) ackPayload {
	return ackPayload{"success": false, "error": domain.Kind(err)}
}

func ackInvalid() ackPayload {
	return ackPayload{"success": false, "error": "invalid-payload"}
}

// ServeWS runs one connection: a writer goroutine owns all writes while this
// goroutine reads and dispatches until the peer goes away.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	c := newClient(conn)
	go c.writePump()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			break
		}
		h.dispatch(r.Context(), c, inbound)
	}

	h.handleDisconnect(c)
	c.close()
}

func (h *WSHandler) dispatch(ctx context.Context, c *client, inbound inboundMessage) {
	ack := func(payload ackPayload) {
		c.trySend(Envelope{Type: inbound.Type + ":result", Payload: payload})
	}

	switch inbound.Type {
	case "create-session":
		var payload createPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		result, err := h.service.CreateSession(payload.DisplayName, payload.Mode, payload.Genre)
		if err != nil {
			ack(ackErr(err))
			return
		}
		c.joinCode = result.JoinCode
		c.role = roleHost
		h.hub.Register(c)
		log.Printf("session %s created by %q mode=%s genre=%s", result.JoinCode, payload.DisplayName, result.Mode, result.Genre)
		ack(ackOK(ackPayload{
			"sessionId": result.SessionID,
			"joinCode":  result.JoinCode,
			"hostId":    result.HostID,
			"gameMode":  result.Mode,
			"genre":     result.Genre,
		}))

	case "attach-host":
		var payload attachHostPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		session, ok := h.service.Session(payload.JoinCode)
		if !ok || session.HostID() != payload.HostID {
			ack(ackErr(domain.ErrSessionNotFound))
			return
		}
		c.joinCode = payload.JoinCode
		c.role = roleHost
		h.hub.Register(c)
		h.service.HostReconnected(payload.JoinCode)
		ack(ackOK(ackPayload{"phase": session.Phase()}))

	case "join-session":
		var payload joinPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.DisplayName == "" {
			ack(ackInvalid())
			return
		}
		result, err := h.service.JoinSession(payload.JoinCode, payload.DisplayName)
		if err != nil {
			ack(ackErr(err))
			return
		}
		c.joinCode = payload.JoinCode
		c.role = roleTeam
		c.teamID = result.TeamID
		h.hub.Register(c)
		h.hub.SendToHost(payload.JoinCode, Envelope{Type: "team-joined", Payload: ackPayload{
			"teamId":      result.TeamID,
			"displayName": result.DisplayName,
			"totalTeams":  result.TotalTeams,
		}})
		log.Printf("team %q joined session %s", payload.DisplayName, payload.JoinCode)
		ack(ackOK(ackPayload{
			"teamId":      result.TeamID,
			"displayName": result.DisplayName,
			"phase":       result.Phase,
		}))

	case "leave-session":
		if !c.bound() || c.role != roleTeam {
			ack(ackErr(domain.ErrTeamNotFound))
			return
		}
		if left, ok := h.service.LeaveTeam(c.joinCode, c.teamID); ok {
			h.hub.SendToHost(c.joinCode, Envelope{Type: "team-left", Payload: left})
		}
		h.hub.Unregister(c)
		ack(ackOK(nil))

	case "load-questions":
		var payload loadPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		total, err := h.service.LoadBankQuestions(ctx, payload.JoinCode, payload.Count)
		if err != nil {
			ack(ackErr(err))
			return
		}
		log.Printf("session %s holds %d questions", payload.JoinCode, total)
		ack(ackOK(ackPayload{"questionsCount": total}))

	case "load-trivia-questions":
		var payload loadPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		total, err := h.service.LoadTriviaQuestions(ctx, payload.JoinCode, payload.Count)
		if err != nil {
			ack(ackErr(err))
			return
		}
		ack(ackOK(ackPayload{"questionsCount": total}))

	case "add-question":
		var payload addQuestionPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || !validQuestion(payload.Question) {
			ack(ackInvalid())
			return
		}
		total, err := h.service.AddQuestion(payload.JoinCode, payload.Question)
		if err != nil {
			ack(ackErr(err))
			return
		}
		ack(ackOK(ackPayload{"questionsCount": total}))

	case "start-session":
		var payload codePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		question, err := h.service.StartSession(payload.JoinCode)
		if err != nil {
			ack(ackErr(err))
			return
		}
		h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "session-started", Payload: ackPayload{"question": question}})
		log.Printf("session %s started with %d questions", payload.JoinCode, question.TotalQuestions)
		ack(ackOK(nil))

	case "advance-question":
		var payload codePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		result, err := h.service.AdvanceQuestion(payload.JoinCode)
		if err != nil {
			ack(ackErr(err))
			return
		}
		if result.Ended {
			h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "session-ended", Payload: ackPayload{
				"finalLeaderboard": result.FinalBoard,
				"totalQuestions":   result.TotalQuestions,
			}})
			log.Printf("session %s ended", payload.JoinCode)
			ack(ackOK(ackPayload{"ended": true}))
			return
		}
		h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "new-question", Payload: ackPayload{"question": result.Question}})
		ack(ackOK(ackPayload{"question": result.Question}))

	case "submit-answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		if _, err := h.service.SubmitAnswer(payload.JoinCode, payload.TeamID, payload.Answer); err != nil {
			ack(ackErr(err))
			return
		}
		// Correctness stays hidden until the host reveals.
		h.hub.SendToHost(payload.JoinCode, Envelope{Type: "answer-submitted", Payload: ackPayload{"teamId": payload.TeamID}})
		ack(ackOK(ackPayload{"submitted": true}))

	case "reveal-answer":
		var payload codePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		result, err := h.service.RevealAnswer(payload.JoinCode)
		if err != nil {
			ack(ackErr(err))
			return
		}
		h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "answer-revealed", Payload: result})
		ack(ackOK(ackPayload{"correctAnswer": result.CorrectAnswer, "leaderboard": result.Leaderboard}))

	case "get-leaderboard":
		var payload codePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		board, err := h.service.Leaderboard(payload.JoinCode)
		if err != nil {
			ack(ackErr(err))
			return
		}
		ack(ackOK(ackPayload{"leaderboard": board}))

	case "arm-buzzer":
		var payload codePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		if err := h.service.ArmBuzzer(payload.JoinCode); err != nil {
			ack(ackErr(err))
			return
		}
		h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "buzzer-armed"})
		ack(ackOK(nil))

	case "clear-buzzer":
		var payload codePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		if err := h.service.ClearBuzzer(payload.JoinCode); err != nil {
			ack(ackErr(err))
			return
		}
		h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "buzzer-cleared"})
		ack(ackOK(nil))

	case "claim-buzzer":
		var payload claimPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			ack(ackInvalid())
			return
		}
		result, err := h.service.ClaimBuzzer(payload.JoinCode, payload.TeamID)
		if err != nil {
			ack(ackErr(err))
			return
		}
		h.hub.BroadcastToSession(payload.JoinCode, Envelope{Type: "team-claimed-buzzer", Payload: result})
		ack(ackOK(ackPayload{"claimed": true}))

	default:
		c.trySend(Envelope{Type: "error", Payload: ackPayload{"message": "unsupported message type"}})
	}
}

// handleDisconnect reconciles session state when a connection drops without
// an explicit leave.
func (h *WSHandler) handleDisconnect(c *client) {
	if !c.bound() {
		return
	}
	switch c.role {
	case roleTeam:
		if left, ok := h.service.LeaveTeam(c.joinCode, c.teamID); ok {
			h.hub.SendToHost(c.joinCode, Envelope{Type: "team-left", Payload: left})
			if left.Evicted {
				log.Printf("empty lobby session %s evicted", c.joinCode)
			}
		}
	case roleHost:
		h.service.HostDisconnected(c.joinCode)
		log.Printf("host disconnected from session %s", c.joinCode)
	}
	h.hub.Unregister(c)
}

// validQuestion bounds host-authored questions at the transport boundary so
// malformed shapes never reach the state machine.
func validQuestion(rec questions.Record) bool {
	if rec.Text == "" || len(rec.Options) < 2 || len(rec.Options) > 6 {
		return false
	}
	for _, opt := range rec.Options {
		if opt == rec.CorrectAnswer {
			return true
		}
	}
	return false
}
