package types

// Websocket message types for the integration progress stream.
const (
	TypeWebsocketPing      = "ping"
	TypeWebsocketPong      = "pong"
	TypeWebsocketIntegrate = "integrate"
	TypeWebsocketProgress  = "progress"
	TypeWebsocketOutcome   = "outcome"
	TypeWebsocketError     = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebsocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
