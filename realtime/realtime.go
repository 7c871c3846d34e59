package realtime

import (
	"log"
	"sync"

	"github.com/tomaspozo/hackathon-platform/metrics"
	"github.com/tomaspozo/hackathon-platform/models"

	"github.com/gorilla/websocket"
)

var (
	hackathonClients = make(map[string]map[*websocket.Conn]bool) // Map of hackathon ID to connected clients
	broadcast        = make(chan ScoreUpdate)                    // Broadcast channel for updates
	mutex            sync.Mutex                                  // Mutex to protect hackathonClients map
)

// ScoreUpdate represents a new or revised judging score
type ScoreUpdate struct {
	HackathonID string              `json:"hackathon_id"`
	Score       models.JudgingScore `json:"score"`
	UpdateType  string              `json:"update_type"` // "new" or "update"
}

// RegisterClient adds a WebSocket client to a specific hackathon leaderboard
func RegisterClient(hackathonID string, conn *websocket.Conn) {
	mutex.Lock()
	if hackathonClients[hackathonID] == nil {
		hackathonClients[hackathonID] = make(map[*websocket.Conn]bool)
	}
	hackathonClients[hackathonID][conn] = true
	mutex.Unlock()
	metrics.WebsocketClients.Inc()
}

// UnregisterClient removes a WebSocket client from a specific hackathon leaderboard
func UnregisterClient(hackathonID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := hackathonClients[hackathonID]; exists {
		if clients[conn] {
			metrics.WebsocketClients.Dec()
		}
		delete(clients, conn)
		if len(clients) == 0 {
			delete(hackathonClients, hackathonID)
		}
	}
	mutex.Unlock()
}

// BroadcastScoreUpdate sends updates to all clients watching a specific hackathon
func BroadcastScoreUpdate(update ScoreUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := hackathonClients[update.HackathonID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
					metrics.WebsocketClients.Dec()
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
