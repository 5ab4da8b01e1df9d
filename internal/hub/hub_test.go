package hub

import (
	"context"
	"sync"
	"testing"

	"notifyd/pkg/types"
)

// testMediator records every delivery and lifecycle hook call.
type testMediator struct {
	name           string
	interests      []string
	asyncInterests []string

	mu       sync.Mutex
	got      []types.Notification
	asyncGot []types.Notification

	registered int
	removed    int
	onRegister func()

	handleErr error
	asyncErr  error
}

func (m *testMediator) Name() string { return m.name }

func (m *testMediator) NotificationInterests() []string { return m.interests }

func (m *testMediator) AsyncNotificationInterests() []string { return m.asyncInterests }

func (m *testMediator) HandleNotification(n types.Notification) error {
	m.mu.Lock()
	m.got = append(m.got, n)
	m.mu.Unlock()
	return m.handleErr
}

func (m *testMediator) HandleNotificationAsync(ctx context.Context, n types.Notification) error {
	m.mu.Lock()
	m.asyncGot = append(m.asyncGot, n)
	m.mu.Unlock()
	return m.asyncErr
}

func (m *testMediator) OnRegister() {
	m.registered++
	if m.onRegister != nil {
		m.onRegister()
	}
}

func (m *testMediator) OnRemove() { m.removed++ }

func (m *testMediator) received() []types.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.Notification(nil), m.got...)
}

func (m *testMediator) receivedAsync() []types.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.Notification(nil), m.asyncGot...)
}

func TestRemoveObserver_LeavesOthers(t *testing.T) {
	h := New()
	ctxA, ctxB := new(int), new(int)
	var order []string
	h.RegisterObserver("evt", NewObserver(func(types.Notification) error {
		order = append(order, "A")
		return nil
	}, ctxA))
	h.RegisterObserver("evt", NewObserver(func(types.Notification) error {
		order = append(order, "B")
		return nil
	}, ctxB))

	h.RemoveObserver("evt", ctxA)
	if err := h.Notify(types.Notification{Name: "evt"}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(order) != 1 || order[0] != "B" {
		t.Fatalf("expected only B to fire, got %v", order)
	}
}

func TestRemoveObserver_LastDeletesKey(t *testing.T) {
	h := New()
	ctx := new(int)
	h.RegisterObserver("evt", NewObserver(func(types.Notification) error { return nil }, ctx))
	h.RemoveObserver("evt", ctx)

	h.mu.RLock()
	_, present := h.observers["evt"]
	h.mu.RUnlock()
	if present {
		t.Fatalf("expected map entry for evt to be deleted after last removal")
	}
	if s, a := h.Subscribers("evt"); s != 0 || a != 0 {
		t.Fatalf("Subscribers = (%d, %d), want (0, 0)", s, a)
	}
}

func TestRemoveObserver_MissingIsNoop(t *testing.T) {
	h := New()
	h.RemoveObserver("nobody", new(int))
	h.RemoveAsyncObserver("nobody", new(int))
}

func TestObserver_CompareContextIdentity(t *testing.T) {
	ctx := new(int)
	o := NewObserver(func(types.Notification) error { return nil }, ctx)
	if !o.CompareContext(ctx) {
		t.Fatalf("expected identical context to match")
	}
	if o.CompareContext(new(int)) {
		t.Fatalf("expected distinct context not to match")
	}
}

func TestObserver_SetHandlerAndContext(t *testing.T) {
	old, repl := new(int), new(int)
	fired := false
	o := NewObserver(func(types.Notification) error { return nil }, old)
	o.SetHandler(func(types.Notification) error { fired = true; return nil })
	o.SetContext(repl)
	if o.CompareContext(old) || !o.CompareContext(repl) {
		t.Fatalf("context replacement not observed")
	}
	if err := o.Notify(types.Notification{}); err != nil || !fired {
		t.Fatalf("replaced handler did not fire (err=%v)", err)
	}
}

func TestStatus_Snapshot(t *testing.T) {
	h := New()
	h.RegisterObserver("a", NewObserver(func(types.Notification) error { return nil }, new(int)))
	h.RegisterObserver("a", NewObserver(func(types.Notification) error { return nil }, new(int)))
	h.RegisterAsyncObserver("b", NewAsyncObserver(func(context.Context, types.Notification) error { return nil }, new(int)))
	m := &testMediator{name: "med", interests: []string{"a"}}
	h.RegisterMediator(m)
	_ = h.Notify(types.Notification{Name: "a"})

	st := h.Status()
	if len(st.Subscriptions) != 2 {
		t.Fatalf("subscriptions len=%d, want 2: %+v", len(st.Subscriptions), st.Subscriptions)
	}
	if st.Subscriptions[0].Name != "a" || st.Subscriptions[0].Observers != 3 {
		t.Fatalf("unexpected subscription a: %+v", st.Subscriptions[0])
	}
	if st.Subscriptions[1].Name != "b" || st.Subscriptions[1].AsyncObservers != 1 {
		t.Fatalf("unexpected subscription b: %+v", st.Subscriptions[1])
	}
	if len(st.Mediators) != 1 || st.Mediators[0].Name != "med" {
		t.Fatalf("unexpected mediators: %+v", st.Mediators)
	}
	if st.DispatchesTotal != 1 {
		t.Fatalf("dispatches=%d, want 1", st.DispatchesTotal)
	}
}
