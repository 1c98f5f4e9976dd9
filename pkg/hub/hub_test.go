package hub

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient registers a client with a bare send channel. The pumps
// never run, so a nil conn is fine.
func newTestClient(h *Hub, buf int) *Client {
	c := &Client{hub: h, send: make(chan []byte, buf)}
	h.register <- c
	return c
}

func TestHub_BroadcastJSONReachesEveryClient(t *testing.T) {
	h := New("test")
	go h.Run()

	a := newTestClient(h, 4)
	b := newTestClient(h, 4)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, time.Millisecond)

	require.NoError(t, h.BroadcastJSON(map[string]int{"yaw": 10}))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			assert.JSONEq(t, `{"yaw":10}`, string(msg))
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}

	h.unregister <- a
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, time.Millisecond)
}

func TestHub_DropsSlowClientWhileCounting(t *testing.T) {
	h := New("test")
	go h.Run()

	healthy := newTestClient(h, 16)
	slow := newTestClient(h, 0)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, time.Millisecond)

	// Poll the count concurrently with the broadcast that drops the
	// slow client; the drop mutates the client set, and the race
	// detector flags it when that write is not fully locked.
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				h.ClientCount()
			}
		}
	}()

	h.Broadcast([]byte(`{"tick":1}`))

	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, time.Millisecond)
	close(done)
	wg.Wait()

	msg := <-healthy.send
	assert.JSONEq(t, `{"tick":1}`, string(msg))

	_, open := <-slow.send
	assert.False(t, open, "dropped client's send channel must be closed")
}
