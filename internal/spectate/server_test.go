package spectate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/neon-snake/internal/game"
	"github.com/vovakirdan/neon-snake/internal/logging"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	srv := NewServer(":0", hub, logging.Discard())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return hub, ts
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestListAndGetSessions(t *testing.T) {
	hub, ts := newTestServer(t)
	hub.Register("one", "alice")
	hub.Publish("one", game.Snapshot{Tick: 12, Score: 3})

	resp, err := http.Get(ts.URL + "/sessions")
	if err != nil {
		t.Fatal(err)
	}
	var list []SessionInfo
	json.NewDecoder(resp.Body).Decode(&list)
	resp.Body.Close()

	if len(list) != 1 || list[0].ID != "one" || list[0].User != "alice" {
		t.Errorf("sessions = %+v", list)
	}

	resp, err = http.Get(ts.URL + "/sessions/one")
	if err != nil {
		t.Fatal(err)
	}
	var snap game.Snapshot
	json.NewDecoder(resp.Body).Decode(&snap)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK || snap.Tick != 12 || snap.Score != 3 {
		t.Errorf("status %d, snapshot %+v", resp.StatusCode, snap)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
	}
}

func TestGetUnknownSession(t *testing.T) {
	_, ts := newTestServer(t)

	for _, path := range []string{"/sessions/nope", "/sessions/nope/ws"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: status = %d, expected 404", path, resp.StatusCode)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	_, ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.Header.Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}

func TestWebsocketStream(t *testing.T) {
	hub, ts := newTestServer(t)
	hub.Register("live", "bob")
	hub.Publish("live", game.Snapshot{Tick: 1})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sessions/live/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var snap game.Snapshot
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	if snap.Tick != 1 {
		t.Errorf("first message Tick = %d, expected the latest (1)", snap.Tick)
	}

	// A repeated tick is not sent again.
	hub.Publish("live", game.Snapshot{Tick: 1})
	hub.Publish("live", game.Snapshot{Tick: 2})
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	if snap.Tick != 2 {
		t.Errorf("Tick = %d, expected 2", snap.Tick)
	}

	hub.Remove("live")
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected normal closure after session end, got %v", err)
	}
}

func TestTickFilter(t *testing.T) {
	var f tickFilter
	tests := []struct {
		tick uint64
		want bool
	}{
		{0, true},
		{0, false},
		{1, true},
		{1, false},
		{3, true},
		{2, false},
		{4, true},
	}
	for _, tt := range tests {
		if got := f.next(game.Snapshot{Tick: tt.tick}); got != tt.want {
			t.Errorf("next(tick %d) = %v, expected %v", tt.tick, got, tt.want)
		}
	}
}
