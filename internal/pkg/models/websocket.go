package models

import (
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WebSocketClient represents a connected operator session
type WebSocketClient struct {
	OperatorID string
	Role       string
	Conn       *websocket.Conn
	WriteMu    sync.Mutex
}

// WebSocketClaims represents the JWT claims for websocket authentication
type WebSocketClaims struct {
	OperatorID string `json:"operator_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// WSMessage is the envelope for all operator feed messages
type WSMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Websocket event names pushed to the operator feed
const (
	WSEventBookingChanged = "booking_changed"
	WSEventWorkerChanged  = "worker_changed"
	WSEventRouteState     = "route_state"
	WSEventDisplayState   = "display_state"
	WSEventNotice         = "notice"
)
