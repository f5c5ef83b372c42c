package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/service"
)

func testState(t *testing.T, moves int, won bool) *service.BoardState {
	t.Helper()

	board, err := engine.NewSolvedBoard(3)
	if err != nil {
		t.Fatalf("NewSolvedBoard failed: %v", err)
	}
	status := engine.StatusInProgress
	if won {
		status = engine.StatusWon
	}
	return &service.BoardState{
		Board:  board,
		Moves:  moves,
		Status: status,
		Won:    won,
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:       hub,
		sessionID: "test-session",
		send:      make(chan []byte, 256),
	}

	hub.registerClient(client)
	if !hub.sessions["test-session"][client] {
		t.Error("client was not registered in session")
	}

	hub.unregisterClient(client)
	if _, exists := hub.sessions["test-session"]; exists {
		t.Error("session should be cleaned up after last client unregistered")
	}
}

func TestHubMultipleClientsInSession(t *testing.T) {
	hub := NewHub()
	sessionID := "multi-client"

	client1 := &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 256)}
	client2 := &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 256)}

	hub.registerClient(client1)
	hub.registerClient(client2)
	if len(hub.sessions[sessionID]) != 2 {
		t.Errorf("expected 2 clients in session, got %d", len(hub.sessions[sessionID]))
	}

	hub.unregisterClient(client1)
	if len(hub.sessions[sessionID]) != 1 {
		t.Errorf("expected 1 client remaining, got %d", len(hub.sessions[sessionID]))
	}
	if !hub.sessions[sessionID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastMessage(t *testing.T) {
	hub := NewHub()
	sessionID := "broadcast-test"

	client := &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 256)}
	hub.registerClient(client)

	hub.broadcastMessage(&Message{
		SessionID:  sessionID,
		Event:      "state_update",
		BoardState: testState(t, 7, false),
	})

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("failed to unmarshal message: %v", err)
		}
		if message.SessionID != sessionID {
			t.Errorf("expected session %s, got %s", sessionID, message.SessionID)
		}
		if message.Event != "state_update" {
			t.Errorf("expected event state_update, got %s", message.Event)
		}
		if message.BoardState == nil || message.BoardState.Moves != 7 {
			t.Error("board state not correctly transmitted")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("no message received within timeout")
	}
}

func TestHubWinEvent(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	done := make(chan Message, 1)
	client := &Client{hub: hub, sessionID: "win-test", send: make(chan []byte, 256)}
	hub.register <- client

	hub.BroadcastState("win-test", testState(t, 42, true))

	go func() {
		select {
		case data := <-client.send:
			var message Message
			if err := json.Unmarshal(data, &message); err == nil {
				done <- message
			}
		case <-time.After(time.Second):
		}
	}()

	select {
	case message := <-done:
		if message.Event != "won" {
			t.Errorf("expected event won, got %s", message.Event)
		}
		if message.BoardState == nil || !message.BoardState.Won {
			t.Error("won flag not transmitted")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no win message received")
	}
}

func TestWebSocketEndToEnd(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?sessionId=ws-test"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	// Give the hub time to register the connection.
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastState("ws-test", testState(t, 3, false))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		t.Fatalf("failed to unmarshal message: %v", err)
	}
	if message.SessionID != "ws-test" {
		t.Errorf("expected session ws-test, got %s", message.SessionID)
	}
	if message.BoardState == nil || message.BoardState.Moves != 3 {
		t.Error("board state not received")
	}
	if message.BoardState.Board.Size != 3 {
		t.Errorf("expected board size 3, got %d", message.BoardState.Board.Size)
	}
}
