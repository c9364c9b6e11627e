package websocket

import (
    "log"
    "sync"
    "time"

    "github.com/gofiber/contrib/websocket"
    "github.com/google/uuid"
)

type Client struct {
    UserID uuid.UUID
    Conn   *websocket.Conn
}

// Event is a wallet notification pushed to a connected user: a deposit was
// approved, a payout landed, a withdrawal was processed.
type Event struct {
    Type    string    `json:"type"`
    Message string    `json:"message"`
    Amount  float64   `json:"amount,omitempty"`
    SentAt  time.Time `json:"sent_at"`
}

type userEvent struct {
    userID uuid.UUID
    event  Event
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var events = make(chan userEvent, 64)

// NotifyUser queues an event for the user's open connection. Users without a
// connection simply miss the push; the underlying records are the source of
// truth.
func NotifyUser(userID uuid.UUID, event Event) {
    event.SentAt = time.Now()
    select {
    case events <- userEvent{userID: userID, event: event}:
    default:
        log.Printf("Dropping wallet event for user %s: hub queue full", userID)
    }
}

func RunHub() {
    for {
        select {
        case client := <-Register:
            log.Printf("Client registered: %s", client.UserID)
            clientsMu.Lock()
            clients[client.UserID] = client.Conn
            clientsMu.Unlock()
        case client := <-Unregister:
            log.Printf("Client unregistered: %s", client.UserID)
            clientsMu.Lock()
            if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
                delete(clients, client.UserID)
            }
            clientsMu.Unlock()
        case ue := <-events:
            clientsMu.RLock()
            conn, ok := clients[ue.userID]
            clientsMu.RUnlock()
            if !ok {
                continue
            }
            if err := conn.WriteJSON(ue.event); err != nil {
                log.Printf("Error pushing event to client %s: %v", ue.userID, err)
                conn.Close()
                clientsMu.Lock()
                if current, ok := clients[ue.userID]; ok && current == conn {
                    delete(clients, ue.userID)
                }
                clientsMu.Unlock()
            }
        }
    }
}
