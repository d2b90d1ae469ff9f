package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/matrixersp/kanbanup-api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConn struct {
	mu     sync.Mutex
	wrote  []utils.Event
	closed bool
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {}
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event, ok := v.(utils.Event); ok {
		f.wrote = append(f.wrote, event)
	}
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) events() []utils.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]utils.Event, len(f.wrote))
	copy(out, f.wrote)
	return out
}

func TestHub_BroadcastsToMatchingBoardOnly(t *testing.T) {
	eventBus := utils.NewEventBus()
	hub := NewHub(zap.NewNop(), nil, eventBus)
	go hub.Run()

	watching := &fakeConn{}
	other := &fakeConn{}
	hub.register <- &Client{hub: hub, conn: watching, ID: "c1", BoardID: "board-1"}
	hub.register <- &Client{hub: hub, conn: other, ID: "c2", BoardID: "board-2"}

	eventBus.Publish("board_updated", map[string]interface{}{"boardId": "board-1"})

	require.Eventually(t, func() bool {
		return len(watching.events()) == 1
	}, time.Second, 10*time.Millisecond)

	got := watching.events()[0]
	assert.Equal(t, "board_updated", got.Event)
	assert.Empty(t, other.events(), "clients on other boards must not receive the event")
}

func TestHub_IgnoresEventsWithoutBoardID(t *testing.T) {
	eventBus := utils.NewEventBus()
	hub := NewHub(zap.NewNop(), nil, eventBus)
	go hub.Run()

	conn := &fakeConn{}
	hub.register <- &Client{hub: hub, conn: conn, ID: "c1", BoardID: "board-1"}

	eventBus.Publish("board_updated", "not a map")
	eventBus.Publish("board_updated", map[string]interface{}{"boardId": "board-1"})

	require.Eventually(t, func() bool {
		return len(conn.events()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Len(t, conn.events(), 1)
}
