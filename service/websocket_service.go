package service

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gestorhq/gestor-be/types"
	"github.com/gorilla/websocket"
)

// WebSocketService streams per-entity integration progress to the
// client. Large extraction results are created sequentially server-side,
// so the socket is what keeps the user's progress bar honest.
type WebSocketService struct {
	integration *IntegrationService
	upgrader    websocket.Upgrader
}

func NewWebSocketService(integration *IntegrationService) *WebSocketService {
	return &WebSocketService{
		integration: integration,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleIntegration(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketIntegrate:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.IntegrateRequest
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}

			outcome := s.integration.Integrate(r.Context(), payload.ExtractionResult, payload.TeamID, payload.UserID,
				func(progress types.IntegrationProgress) {
					conn.WriteJSON(types.WebsocketResponse{
						Type:    types.TypeWebsocketProgress,
						Payload: progress,
					})
				})

			if err := conn.WriteJSON(types.WebsocketResponse{
				Type: types.TypeWebsocketOutcome,
				Payload: types.IntegrateResponse{
					Outcome:    outcome,
					Summary:    outcome.Summary(),
					Integrated: outcome.TotalCreated() > 0,
				},
			}); err != nil {
				log.Println("Write error:", err)
				return
			}
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebsocketResponse{
				Type: types.TypeWebsocketPong,
			}); err != nil {
				log.Println("Write error:", err)
				return
			}
		default:
			s.writeError(conn, "invalid message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	conn.WriteJSON(types.WebsocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: message,
	})
}
