package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/metrics"
)

func startHub(t *testing.T, origins []string) (*Hub, *metrics.Metrics, *httptest.Server) {
	t.Helper()

	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	hub := NewHub(zap.NewNop(), m, origins)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	session := &domain.AdminSession{User: &domain.AdminUser{ID: "admin-1"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, session)
	}))
	t.Cleanup(srv.Close)

	return hub, m, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub, m, srv := startHub(t, []string{"*"})

	first := dial(t, srv)
	second := dial(t, srv)

	require.Eventually(t, func() bool { return hub.ConnectedClients() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LiveFeedClients))

	hub.Publish(domain.AppointmentEvent{
		Type:        domain.EventAppointmentCreated,
		Appointment: &domain.Appointment{ID: "appt-1", AppointmentDate: "2025-06-02", AppointmentTime: "09:00"},
	})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var event domain.AppointmentEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, domain.EventAppointmentCreated, event.Type)
		assert.Equal(t, "appt-1", event.Appointment.ID)
		assert.False(t, event.OccurredAt.IsZero())
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, m, srv := startHub(t, []string{"*"})

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ConnectedClients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.ConnectedClients() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.LiveFeedClients))
}

func TestHubRejectsUnknownOrigin(t *testing.T) {
	_, _, srv := startHub(t, []string{"https://barbershop.example"})

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(zap.NewNop(), nil, nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBuffer*2; i++ {
			hub.Publish(domain.AppointmentEvent{Type: domain.EventAppointmentDeleted, ID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}
