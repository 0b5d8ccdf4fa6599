package websocket

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/logger"
	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// Manager manages operator websocket connections and their state
type Manager struct {
	mu       sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new websocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new websocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	return handleClient(client)
}

// authenticateClient authenticates the websocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		OperatorID: claims.OperatorID,
		Role:       claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.OperatorID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(operatorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, operatorID)
}

// GetClient returns a client by operator ID
func (m *Manager) GetClient(operatorID string) (*models.WebSocketClient, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, exists := m.clients[operatorID]
	return client, exists
}

// Send writes a message to one client, serializing writes per connection
func (m *Manager) Send(client *models.WebSocketClient, msg models.WSMessage) error {
	if client.Conn == nil {
		return fmt.Errorf("client %s has no connection", client.OperatorID)
	}

	client.WriteMu.Lock()
	defer client.WriteMu.Unlock()
	return client.Conn.WriteJSON(msg)
}

// Broadcast sends a message to every connected client
func (m *Manager) Broadcast(msg models.WSMessage) {
	m.mu.RLock()
	clients := make([]*models.WebSocketClient, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.mu.RUnlock()

	for _, client := range clients {
		if err := m.Send(client, msg); err != nil {
			logger.Warn("Failed to push websocket message",
				logger.String("operator_id", client.OperatorID),
				logger.Err(err))
		}
	}
}
