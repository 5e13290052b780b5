package gateways

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// ChangeHandler receives table change notifications. It must not block for long.
type ChangeHandler func(change domain.TableChange)

// EventSource is a publish/subscribe feed of table changes. Consumers
// re-fetch the rows they care about when notified.
type EventSource interface {
	// Subscribe registers fn for changes to table. The returned function
	// removes the subscription and is safe to call more than once.
	Subscribe(table string, fn ChangeHandler) (unsubscribe func(), err error)

	// Publish announces a change to every subscriber of change.Table.
	Publish(ctx context.Context, change domain.TableChange) error
}
