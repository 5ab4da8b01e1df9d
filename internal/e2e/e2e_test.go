package e2e

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"notifyd/internal/config"
	"notifyd/internal/httpapi"
	"notifyd/internal/hub"
	"notifyd/internal/mediators"
	"notifyd/internal/notifyctl"
	"notifyd/pkg/types"
)

// writeTempConfig writes a YAML config file into a temp dir and returns its path.
func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "notifyd.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config %s: %v", p, err)
	}
	return p
}

// newServerForConfig assembles the full daemon stack the way cmd/notifyd does:
// load config, build the hub, register the audit mediator if enabled, mount
// the HTTP API.
func newServerForConfig(t *testing.T, cfgPath string) (*httptest.Server, *hub.Hub) {
	t.Helper()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	logger := zerolog.Nop()
	h := hub.NewWithConfig(hub.HubConfig{Logger: &logger})
	if cfg.Audit.Enabled {
		h.RegisterMediator(mediators.NewAuditLog(logger, cfg.Audit.Interests, cfg.Audit.AsyncInterests))
	}
	srv := httptest.NewServer(httpapi.NewMux(h))
	t.Cleanup(srv.Close)
	return srv, h
}

// TestE2E_PublishReachesObservers drives a publish through the HTTP client and
// verifies the hub delivered it to a registered observer.
func TestE2E_PublishReachesObservers(t *testing.T) {
	srv, h := newServerForConfig(t, writeTempConfig(t, "log_level: debug\n"))

	var mu sync.Mutex
	var seen []types.Notification
	h.RegisterObserver("ORDER_PLACED", hub.NewObserver(func(n types.Notification) error {
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
		return nil
	}, "e2e"))

	c := notifyctl.NewClient(srv.URL, 2*time.Second)
	resp, err := c.Publish(types.PublishRequest{
		Name:   "ORDER_PLACED",
		Body:   map[string]any{"order_id": 42},
		Sender: "checkout-service",
	}, false)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if resp.Delivered != 1 {
		t.Fatalf("delivered = %d, want 1", resp.Delivered)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 {
		t.Fatalf("observer saw %d notifications, want 1", len(seen))
	}
	if seen[0].Name != "ORDER_PLACED" || seen[0].Sender != "checkout-service" {
		t.Fatalf("unexpected notification: %+v", seen[0])
	}
	body, ok := seen[0].Body.(map[string]any)
	if !ok || body["order_id"] != float64(42) {
		t.Fatalf("unexpected body: %#v", seen[0].Body)
	}
}

// TestE2E_AuditMediatorFromConfig verifies the audit mediator configured via
// file shows up in /mediators and receives published notifications.
func TestE2E_AuditMediatorFromConfig(t *testing.T) {
	cfgPath := writeTempConfig(t, `
audit:
  enabled: true
  interests: [USER_CREATED]
  async_interests: [USER_DELETED]
`)
	srv, _ := newServerForConfig(t, cfgPath)

	c := notifyctl.NewClient(srv.URL, 2*time.Second)
	ms, err := c.Mediators()
	if err != nil {
		t.Fatalf("mediators: %v", err)
	}
	if len(ms) != 1 || ms[0].Name != mediators.AuditLogName {
		t.Fatalf("unexpected mediators: %+v", ms)
	}
	if len(ms[0].Interests) != 1 || ms[0].Interests[0] != "USER_CREATED" {
		t.Fatalf("unexpected interests: %+v", ms[0].Interests)
	}

	if resp, err := c.Publish(types.PublishRequest{Name: "USER_CREATED"}, false); err != nil {
		t.Fatalf("publish: %v", err)
	} else if resp.Delivered != 1 {
		t.Fatalf("delivered = %d, want 1", resp.Delivered)
	}
	if resp, err := c.Publish(types.PublishRequest{Name: "USER_DELETED"}, true); err != nil {
		t.Fatalf("async publish: %v", err)
	} else if resp.Delivered != 1 {
		t.Fatalf("async delivered = %d, want 1", resp.Delivered)
	}
}

// TestE2E_StatusReflectsActivity checks dispatch counters and subscription
// snapshots after traffic.
func TestE2E_StatusReflectsActivity(t *testing.T) {
	srv, h := newServerForConfig(t, writeTempConfig(t, "{}\n"))

	h.RegisterObserver("PING", hub.NewObserver(func(types.Notification) error { return nil }, "e2e"))

	c := notifyctl.NewClient(srv.URL, 2*time.Second)
	for i := 0; i < 3; i++ {
		if _, err := c.Publish(types.PublishRequest{Name: "PING"}, false); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}

	st, err := c.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.DispatchesTotal != 3 {
		t.Fatalf("dispatches_total = %d, want 3", st.DispatchesTotal)
	}
	if len(st.Subscriptions) != 1 || st.Subscriptions[0].Name != "PING" || st.Subscriptions[0].Observers != 1 {
		t.Fatalf("unexpected subscriptions: %+v", st.Subscriptions)
	}
}

// TestE2E_ObserverFailureSurfacesAsBadGateway exercises the error path end to
// end: a failing observer turns into a 502 the client reports as an error.
func TestE2E_ObserverFailureSurfacesAsBadGateway(t *testing.T) {
	srv, h := newServerForConfig(t, writeTempConfig(t, "{}\n"))

	h.RegisterObserver("FLAKY", hub.NewObserver(func(types.Notification) error {
		return os.ErrPermission
	}, "e2e"))

	c := notifyctl.NewClient(srv.URL, 2*time.Second)
	if _, err := c.Publish(types.PublishRequest{Name: "FLAKY"}, false); err == nil {
		t.Fatal("expected publish error, got nil")
	}
}
