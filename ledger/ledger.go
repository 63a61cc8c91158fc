package ledger

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/pixelrevive/pixelrevive-api/models"
	"gorm.io/gorm"
)

// Ledger is the remote order collection, one row per order, backed by
// Postgres through GORM. Document ids are assigned here on append, never by
// the caller. Every successful mutation re-reads the full collection ordered
// by date descending and pushes it to all subscribers, mirroring a realtime
// document store that delivers snapshots rather than deltas.
type Ledger struct {
	db *gorm.DB

	mu   sync.Mutex
	subs []chan []models.Order
}

// Open migrates the order table and returns a ready ledger.
func Open(db *gorm.DB) (*Ledger, error) {
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		return nil, err
	}
	return &Ledger{db: db}, nil
}

// Append stores a new order under a freshly assigned id and returns that id.
// Any id already set on the order is discarded.
func (l *Ledger) Append(o models.Order) (string, error) {
	o.ID = uuid.NewString()
	if err := l.db.Create(&o).Error; err != nil {
		return "", err
	}
	l.notify()
	return o.ID, nil
}

// Patch updates the status field of one order document.
func (l *Ledger) Patch(id string, status models.OrderStatus) error {
	res := l.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	l.notify()
	return nil
}

// Delete removes one order document.
func (l *Ledger) Delete(id string) error {
	if err := l.db.Where("id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return err
	}
	l.notify()
	return nil
}

// Snapshot returns the full collection, most recent first.
func (l *Ledger) Snapshot() ([]models.Order, error) {
	var orders []models.Order
	if err := l.db.Order("date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Subscribe opens a long-lived snapshot feed. The current collection is
// pushed immediately, then again after every mutation. The channel is
// buffered and stale snapshots are coalesced, so a slow consumer only ever
// misses intermediate states, never the latest one.
func (l *Ledger) Subscribe() (<-chan []models.Order, error) {
	snap, err := l.Snapshot()
	if err != nil {
		return nil, err
	}

	ch := make(chan []models.Order, 1)
	ch <- snap

	l.mu.Lock()
	l.subs = append(l.subs, ch)
	l.mu.Unlock()
	return ch, nil
}

// notify fans the latest snapshot out to every subscriber without blocking.
func (l *Ledger) notify() {
	snap, err := l.Snapshot()
	if err != nil {
		log.Printf("⚠️ Failed to read order snapshot for subscribers: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot and replace it with the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
