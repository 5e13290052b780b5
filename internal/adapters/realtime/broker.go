// Package realtime provides event sources announcing table changes to
// subscribers: an in-process broker and a Postgres LISTEN/NOTIFY listener.
package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
)

// ErrEmptyTable is returned when subscribing or publishing without a table name.
var ErrEmptyTable = errors.New("realtime: table name is required")

type subscription struct {
	id uint64
	fn portsgw.ChangeHandler
}

// Broker fans table changes out to in-process subscribers. Handlers run
// synchronously on the publishing goroutine.
type Broker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[string][]subscription)}
}

var _ portsgw.EventSource = (*Broker)(nil)

// Subscribe registers fn for table.
func (b *Broker) Subscribe(table string, fn portsgw.ChangeHandler) (func(), error) {
	if table == "" {
		return nil, ErrEmptyTable
	}
	if fn == nil {
		return nil, errors.New("realtime: handler is required")
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[table] = append(b.subs[table], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(table, id) })
	}, nil
}

func (b *Broker) remove(table string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[table]
	for i, s := range subs {
		if s.id == id {
			b.subs[table] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[table]) == 0 {
		delete(b.subs, table)
	}
}

// Publish delivers change to every current subscriber of change.Table.
func (b *Broker) Publish(_ context.Context, change domain.TableChange) error {
	if change.Table == "" {
		return ErrEmptyTable
	}
	b.dispatch(change)
	return nil
}

func (b *Broker) dispatch(change domain.TableChange) {
	b.mu.RLock()
	handlers := make([]portsgw.ChangeHandler, 0, len(b.subs[change.Table]))
	for _, s := range b.subs[change.Table] {
		handlers = append(handlers, s.fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Realtime handler panicked", slog.String("table", change.Table), slog.Any("panic", r))
				}
			}()
			fn(change)
		}()
	}
}

// Subscribers returns the number of subscribers for table.
func (b *Broker) Subscribers(table string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[table])
}
