package store

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pixelrevive/pixelrevive-api/configstore"
	"github.com/pixelrevive/pixelrevive-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger stands in for the remote order collection.
type fakeLedger struct {
	mu       sync.Mutex
	appended []models.Order
	patched  map[string]models.OrderStatus
	deleted  []string

	appendErr error
	patchErr  error
	deleteErr error

	ch chan []models.Order
}

func newFakeLedger() *fakeLedger {
	f := &fakeLedger{
		patched: make(map[string]models.OrderStatus),
		ch:      make(chan []models.Order, 8),
	}
	f.ch <- []models.Order{} // initial snapshot
	return f
}

func (f *fakeLedger) Append(o models.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return "", f.appendErr
	}
	f.appended = append(f.appended, o)
	return "ledger-assigned-id", nil
}

func (f *fakeLedger) Patch(id string, status models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patched[id] = status
	return nil
}

func (f *fakeLedger) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeLedger) Subscribe() (<-chan []models.Order, error) {
	return f.ch, nil
}

func (f *fakeLedger) push(orders []models.Order) {
	f.ch <- orders
}

func (f *fakeLedger) appendedOrders() []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Order, len(f.appended))
	copy(out, f.appended)
	return out
}

func newTestConfigs(t *testing.T) *configstore.Store {
	t.Helper()
	return configstore.New(filepath.Join(t.TempDir(), "store-config.json"))
}

func offlineManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(newTestConfigs(t), nil)
}

func testOrder(id, name string) models.Order {
	return models.Order{
		ID:            id,
		CustomerName:  name,
		CustomerEmail: name + "@example.com",
		Date:          time.Now().UTC(),
		Amount:        9.99,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: "Card",
		Items:         "Family Pack (5 restorations)",
	}
}

func waitForOrders(t *testing.T, m *Manager, want int) []models.Order {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(m.Orders()) == want
	}, time.Second, 5*time.Millisecond)
	return m.Orders()
}

// -------- Demo mode --------

func TestDemoModeSeedsDefaultsAndPlaceholder(t *testing.T) {
	m := offlineManager(t)

	assert.Equal(t, configstore.DefaultConfig(), m.Config())
	assert.Equal(t, LedgerUnconfigured, m.State())

	orders := m.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
}

func TestPersistedStoreNameOverridesDefault(t *testing.T) {
	configs := newTestConfigs(t)
	require.NoError(t, configs.Save(models.StoreConfig{StoreName: "Foo"}))

	m := NewManager(configs, nil)

	cfg := m.Config()
	assert.Equal(t, "Foo", cfg.StoreName)
	assert.Equal(t, configstore.DefaultConfig().HeroTitle, cfg.HeroTitle)
	assert.Equal(t, configstore.DefaultConfig().PaymentMethods, cfg.PaymentMethods)
}

// -------- Config updates --------

func TestUpdateConfigTouchesOnlyPatchedFields(t *testing.T) {
	m := offlineManager(t)
	before := m.Config()

	title := "New hero title"
	after := m.UpdateConfig(models.ConfigPatch{HeroTitle: &title})

	assert.Equal(t, "New hero title", after.HeroTitle)
	assert.Equal(t, before.StoreName, after.StoreName)
	assert.Equal(t, before.FooterText, after.FooterText)
	assert.Equal(t, before.Bundles, after.Bundles)
}

func TestUpdateConfigPersistsSynchronously(t *testing.T) {
	configs := newTestConfigs(t)
	m := NewManager(configs, nil)

	name := "Persisted Name"
	m.UpdateConfig(models.ConfigPatch{StoreName: &name})

	persisted, ok := configs.Load()
	require.True(t, ok)
	assert.Equal(t, "Persisted Name", persisted.StoreName)
	// The full document is persisted, not just the patch.
	assert.Equal(t, m.Config().HeroTitle, persisted.HeroTitle)
}

// -------- Orders, unreachable ledger --------

func TestAddOrderOfflinePrependsWithClientID(t *testing.T) {
	m := offlineManager(t)

	placement := m.AddOrder(testOrder("20250908130500-abc", "Alice"))
	assert.Equal(t, PlacedLocal, placement)

	orders := m.Orders()
	require.Len(t, orders, 2) // placeholder stays at the tail
	assert.Equal(t, "20250908130500-abc", orders[0].ID)
	assert.Equal(t, "Alice", orders[0].CustomerName)
}

func TestSequentialOfflineAddsAreMostRecentFirst(t *testing.T) {
	m := offlineManager(t)

	m.AddOrder(testOrder("id-1", "First"))
	m.AddOrder(testOrder("id-2", "Second"))

	orders := m.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, "id-2", orders[0].ID)
	assert.Equal(t, "id-1", orders[1].ID)
}

func TestUpdateOrderOfflineChangesOnlyStatus(t *testing.T) {
	m := offlineManager(t)
	m.AddOrder(testOrder("id-1", "Alice"))
	m.AddOrder(testOrder("id-2", "Bob"))

	placement := m.UpdateOrder("id-1", models.OrderStatusRefunded)
	assert.Equal(t, PlacedLocal, placement)

	target, ok := m.OrderByID("id-1")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusRefunded, target.Status)
	assert.Equal(t, "Alice", target.CustomerName)
	assert.Equal(t, 9.99, target.Amount)

	other, ok := m.OrderByID("id-2")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusCompleted, other.Status)
}

func TestDeleteOrderOffline(t *testing.T) {
	m := offlineManager(t)
	m.AddOrder(testOrder("id-1", "Alice"))

	m.DeleteOrder("id-1")

	_, ok := m.OrderByID("id-1")
	assert.False(t, ok)
}

// -------- Orders, subscribed ledger --------

func TestSubscribedManagerAppliesInitialSnapshot(t *testing.T) {
	f := newFakeLedger()
	m := NewManager(newTestConfigs(t), f)

	assert.Equal(t, LedgerSubscribed, m.State())
	waitForOrders(t, m, 0) // empty initial snapshot, no placeholder
}

func TestAddOrderSubscribedStripsClientID(t *testing.T) {
	f := newFakeLedger()
	m := NewManager(newTestConfigs(t), f)
	waitForOrders(t, m, 0)

	placement := m.AddOrder(testOrder("client-id", "Alice"))
	assert.Equal(t, PlacedRemote, placement)

	appended := f.appendedOrders()
	require.Len(t, appended, 1)
	assert.Empty(t, appended[0].ID)

	// Not visible until the subscription pushes it back.
	assert.Empty(t, m.Orders())

	pushed := testOrder("ledger-assigned-id", "Alice")
	f.push([]models.Order{pushed})

	orders := waitForOrders(t, m, 1)
	assert.Equal(t, "ledger-assigned-id", orders[0].ID)
}

func TestSnapshotPushReplacesListWholesale(t *testing.T) {
	f := newFakeLedger()
	m := NewManager(newTestConfigs(t), f)
	waitForOrders(t, m, 0)

	f.push([]models.Order{testOrder("a", "A"), testOrder("b", "B")})
	waitForOrders(t, m, 2)

	f.push([]models.Order{testOrder("c", "C")})
	orders := waitForOrders(t, m, 1)
	assert.Equal(t, "c", orders[0].ID)
}

func TestAddOrderAppendFailureFallsBackToLocal(t *testing.T) {
	f := newFakeLedger()
	f.appendErr = errors.New("connection reset")
	m := NewManager(newTestConfigs(t), f)
	waitForOrders(t, m, 0)

	placement := m.AddOrder(testOrder("client-id", "Alice"))

	// Best-effort contract: the failure is swallowed, the order lands in
	// memory with its client id intact.
	assert.Equal(t, PlacedLocal, placement)
	orders := m.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "client-id", orders[0].ID)
}

func TestUpdateOrderSubscribedPatchesLedger(t *testing.T) {
	f := newFakeLedger()
	m := NewManager(newTestConfigs(t), f)
	waitForOrders(t, m, 0)

	placement := m.UpdateOrder("some-id", models.OrderStatusRefunded)
	assert.Equal(t, PlacedRemote, placement)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, models.OrderStatusRefunded, f.patched["some-id"])
}

func TestDeleteOrderSubscribedDeletesFromLedger(t *testing.T) {
	f := newFakeLedger()
	m := NewManager(newTestConfigs(t), f)
	waitForOrders(t, m, 0)

	placement := m.DeleteOrder("some-id")
	assert.Equal(t, PlacedRemote, placement)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, []string{"some-id"}, f.deleted)
}

func TestSubscriptionCloseIsFailStop(t *testing.T) {
	f := newFakeLedger()
	m := NewManager(newTestConfigs(t), f)
	f.push([]models.Order{testOrder("a", "A")})
	waitForOrders(t, m, 1)

	close(f.ch)

	require.Eventually(t, func() bool {
		return m.State() == LedgerError
	}, time.Second, 5*time.Millisecond)

	// Last known list keeps serving; later writes go down the local path.
	orders := m.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, PlacedLocal, m.AddOrder(testOrder("late", "Late")))
}

// -------- Session flags --------

func TestLoginLogoutIdempotent(t *testing.T) {
	m := offlineManager(t)

	assert.False(t, m.IsAdmin())
	m.Login()
	m.Login()
	assert.True(t, m.IsAdmin())

	m.Logout()
	m.Logout()
	assert.False(t, m.IsAdmin())
}

// -------- Change notifications --------

func TestOnOrdersChangedFiresOnLocalMutation(t *testing.T) {
	m := offlineManager(t)

	var (
		mu    sync.Mutex
		calls [][]models.Order
	)
	m.OnOrdersChanged(func(orders []models.Order) {
		mu.Lock()
		calls = append(calls, orders)
		mu.Unlock()
	})

	m.AddOrder(testOrder("id-1", "Alice"))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, "id-1", calls[0][0].ID)
}
