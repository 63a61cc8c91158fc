package store

import (
	"log"
	"sync"
	"time"

	"github.com/pixelrevive/pixelrevive-api/configstore"
	"github.com/pixelrevive/pixelrevive-api/models"
)

// LedgerState tracks connectivity to the remote order collection. There is no
// reconnect path: once the subscription errors the state stays LedgerError for
// the rest of the process, keeping the last known order list. Unconfigured is
// terminal for the session as well, since credentials are load-time only.
type LedgerState string

const (
	LedgerUnconfigured LedgerState = "unconfigured"
	LedgerSubscribed   LedgerState = "subscribed"
	LedgerError        LedgerState = "error"
)

// Placement reports which path a best-effort mutation took. Callers never see
// an error either way; the placement exists so the contract can be asserted.
type Placement string

const (
	PlacedRemote Placement = "remote"
	PlacedLocal  Placement = "local"
)

// OrderLedger is the slice of the remote order collection the manager
// consumes: append with server-assigned identity, patch one field, delete,
// and a long-lived snapshot subscription.
type OrderLedger interface {
	Append(o models.Order) (string, error)
	Patch(id string, status models.OrderStatus) error
	Delete(id string) error
	Subscribe() (<-chan []models.Order, error)
}

// ConfigStore persists the storefront configuration document.
type ConfigStore interface {
	Load() (models.StoreConfig, bool)
	Save(cfg models.StoreConfig) error
}

// Manager is the single source of truth for storefront configuration, the
// live order list and the admin session flag. Every screen reads and mutates
// state through it; nothing else writes the cached state. It always holds a
// legal in-memory state even with no collaborator configured, so the
// storefront keeps working in demo mode.
type Manager struct {
	mu      sync.Mutex
	cfg     models.StoreConfig
	orders  []models.Order
	isAdmin bool
	state   LedgerState

	configs   ConfigStore
	ledger    OrderLedger
	listeners []func([]models.Order)
}

// NewManager loads the persisted config, merges it onto the hardcoded
// defaults and opens the order subscription when a ledger is configured.
// With a nil ledger the order list is seeded with a single synthetic
// placeholder signaling offline mode and no synchronization is attempted
// for the rest of the session.
func NewManager(configs ConfigStore, l OrderLedger) *Manager {
	cfg := configstore.DefaultConfig()
	if persisted, ok := configs.Load(); ok {
		cfg = configstore.Merge(cfg, persisted)
	}

	m := &Manager{
		cfg:     cfg,
		configs: configs,
		ledger:  l,
		state:   LedgerUnconfigured,
	}

	if l == nil {
		log.Println("ℹ️ No order database configured, running in local demo mode")
		m.orders = []models.Order{placeholderOrder()}
		return m
	}

	ch, err := l.Subscribe()
	if err != nil {
		log.Printf("⚠️ Order subscription failed, running in local demo mode: %v", err)
		m.orders = []models.Order{placeholderOrder()}
		return m
	}

	m.state = LedgerSubscribed
	go m.consume(ch)
	return m
}

// placeholderOrder is the synthetic entry shown when no order database is
// reachable, so the admin panel never renders an empty void in demo mode.
func placeholderOrder() models.Order {
	return models.Order{
		ID:           "local-demo",
		CustomerName: "Demo Customer",
		Date:         time.Now().UTC(),
		Amount:       0,
		Status:       models.OrderStatusPending,
		Items:        "Offline mode — orders are kept in memory only",
	}
}

// consume applies subscription pushes until the feed dies. Each push replaces
// the in-memory list wholesale; the cache is never authoritative while the
// subscription lives. A closed feed is logged and left alone — the last known
// list keeps serving reads.
func (m *Manager) consume(ch <-chan []models.Order) {
	for snap := range ch {
		m.mu.Lock()
		m.orders = snap
		out := m.ordersLocked()
		m.mu.Unlock()
		m.fire(out)
	}

	m.mu.Lock()
	m.state = LedgerError
	m.mu.Unlock()
	log.Println("⚠️ Order subscription closed, keeping last known order list")
}

// Config returns the current merged configuration.
func (m *Manager) Config() models.StoreConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// Orders returns a copy of the current order list, most recent first.
func (m *Manager) Orders() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ordersLocked()
}

// OrderByID looks up one order in the cached list.
func (m *Manager) OrderByID(id string) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// State reports ledger connectivity.
func (m *Manager) State() LedgerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// UpdateConfig shallow-merges a partial update into the configuration and
// persists the full resulting document synchronously. Persistence is
// best-effort: a failed save is logged and the in-memory update stands.
func (m *Manager) UpdateConfig(patch models.ConfigPatch) models.StoreConfig {
	m.mu.Lock()
	m.cfg = configstore.ApplyPatch(m.cfg, patch)
	cfg := m.cfg
	m.mu.Unlock()

	if err := m.configs.Save(cfg); err != nil {
		log.Printf("⚠️ Failed to persist store config: %v", err)
	}
	return cfg
}

// AddOrder records a new order. While subscribed the client-assigned id is
// stripped and the ledger assigns authoritative identity; the order only
// becomes visible through the next subscription push. When the ledger is
// unconfigured, errored, or the append fails, the order is prepended to the
// in-memory list as-is, client id kept. The caller sees success either way.
func (m *Manager) AddOrder(o models.Order) Placement {
	m.mu.Lock()
	subscribed := m.state == LedgerSubscribed
	l := m.ledger
	m.mu.Unlock()

	if subscribed {
		remote := o
		remote.ID = ""
		_, err := l.Append(remote)
		if err == nil {
			return PlacedRemote
		}
		log.Printf("⚠️ Failed to append order to ledger, keeping it in memory: %v", err)
	}

	m.mu.Lock()
	m.orders = append([]models.Order{o}, m.orders...)
	out := m.ordersLocked()
	m.mu.Unlock()
	m.fire(out)
	return PlacedLocal
}

// UpdateOrder changes one order's status. While subscribed the ledger is
// patched and the visible list reconciles via the next push; otherwise the
// cached copy is mutated directly. Best-effort, same as AddOrder.
func (m *Manager) UpdateOrder(id string, status models.OrderStatus) Placement {
	m.mu.Lock()
	subscribed := m.state == LedgerSubscribed
	l := m.ledger
	m.mu.Unlock()

	if subscribed {
		err := l.Patch(id, status)
		if err == nil {
			return PlacedRemote
		}
		log.Printf("⚠️ Failed to patch order %s in ledger, updating in memory: %v", id, err)
	}

	m.mu.Lock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			break
		}
	}
	out := m.ordersLocked()
	m.mu.Unlock()
	m.fire(out)
	return PlacedLocal
}

// DeleteOrder removes an order by explicit admin action.
func (m *Manager) DeleteOrder(id string) Placement {
	m.mu.Lock()
	subscribed := m.state == LedgerSubscribed
	l := m.ledger
	m.mu.Unlock()

	if subscribed {
		err := l.Delete(id)
		if err == nil {
			return PlacedRemote
		}
		log.Printf("⚠️ Failed to delete order %s from ledger, removing in memory: %v", id, err)
	}

	m.mu.Lock()
	kept := m.orders[:0]
	for _, o := range m.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	m.orders = kept
	out := m.ordersLocked()
	m.mu.Unlock()
	m.fire(out)
	return PlacedLocal
}

// Login sets the in-memory admin flag. Idempotent; the flag resets on
// restart. Credential checking happens in the calling handler.
func (m *Manager) Login() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isAdmin = true
}

// Logout clears the admin flag. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isAdmin = false
}

// IsAdmin reports the in-memory admin session flag.
func (m *Manager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isAdmin
}

// OnOrdersChanged registers a callback fired with a fresh copy of the order
// list after every change, remote or local. Register before serving traffic.
func (m *Manager) OnOrdersChanged(fn func([]models.Order)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) ordersLocked() []models.Order {
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

func (m *Manager) fire(orders []models.Order) {
	m.mu.Lock()
	listeners := m.listeners
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(orders)
	}
}
