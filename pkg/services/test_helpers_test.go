package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/pkg/events"
	testdb "github.com/switchyard-ai/switchyard/test/database"
)

// eventRecorder captures every event the bus delivers so tests can assert
// on emission without racing the async dispatch.
type eventRecorder struct {
	mu   sync.Mutex
	evts []events.Event
}

func (r *eventRecorder) Name() string { return "test_recorder" }

func (r *eventRecorder) HandleEvent(_ context.Context, evt events.Event) error {
	r.mu.Lock()
	r.evts = append(r.evts, evt)
	r.mu.Unlock()
	return nil
}

func (r *eventRecorder) byType(et events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.evts {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

// waitFor blocks until at least n events of the given type arrived.
func (r *eventRecorder) waitFor(t *testing.T, et events.EventType, n int) []events.Event {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(r.byType(et)) >= n
	}, 5*time.Second, 10*time.Millisecond, "expected %d %s events", n, et)
	return r.byType(et)
}

// testEnv wires the services against a per-test database schema and a
// started bus with a recorder subscribed to every event type.
type testEnv struct {
	client    *ent.Client
	bus       *events.Bus
	recorder  *eventRecorder
	sessions  *SessionService
	contexts  *ContextService
	approvals *ApprovalService
	audit     *AuditService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	client := testdb.NewTestClient(t).Client

	bus := events.NewBus(nil)
	recorder := &eventRecorder{}
	require.NoError(t, bus.SubscribeAll(recorder, 10))
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	return &testEnv{
		client:    client,
		bus:       bus,
		recorder:  recorder,
		sessions:  NewSessionService(client, bus),
		contexts:  NewContextService(client, bus),
		approvals: NewApprovalService(client, bus, nil),
		audit:     NewAuditService(client),
	}
}
