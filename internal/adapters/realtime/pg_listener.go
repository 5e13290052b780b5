package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotifyChannel is the Postgres channel the table_changes trigger notifies on.
const NotifyChannel = "table_changes"

const reconnectDelay = 2 * time.Second

// PgListener turns NOTIFY messages on NotifyChannel into table changes for
// local subscribers. Publish goes through pg_notify so every instance
// listening on the database sees it.
type PgListener struct {
	pool   *pgxpool.Pool
	broker *Broker
	logger *slog.Logger
}

func NewPgListener(pool *pgxpool.Pool, logger *slog.Logger) *PgListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &PgListener{pool: pool, broker: NewBroker(), logger: logger.With(slog.String("component", "pg_listener"))}
}

var _ portsgw.EventSource = (*PgListener)(nil)

func (l *PgListener) Subscribe(table string, fn portsgw.ChangeHandler) (func(), error) {
	return l.broker.Subscribe(table, fn)
}

// Publish sends change through pg_notify. Delivery to local subscribers
// happens when the notification comes back on the listening connection.
func (l *PgListener) Publish(ctx context.Context, change domain.TableChange) error {
	if change.Table == "" {
		return ErrEmptyTable
	}
	if change.OccurredAt.IsZero() {
		change.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to encode table change: %w", err)
	}
	if _, err := l.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, NotifyChannel, string(payload)); err != nil {
		return fmt.Errorf("failed to notify %s: %w", NotifyChannel, err)
	}
	return nil
}

// Run listens until ctx is cancelled, reconnecting after connection loss.
func (l *PgListener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		l.logger.Warn("Listener connection lost, reconnecting", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *PgListener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.logger.Info("Listening for table changes", slog.String("channel", NotifyChannel))

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		change, err := DecodeNotification(n.Payload)
		if err != nil {
			l.logger.Warn("Dropping malformed notification", slog.String("payload", n.Payload), slog.String("error", err.Error()))
			continue
		}
		l.broker.dispatch(change)
	}
}

// DecodeNotification parses a table_changes payload.
func DecodeNotification(payload string) (domain.TableChange, error) {
	var change domain.TableChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return domain.TableChange{}, err
	}
	if change.Table == "" {
		return domain.TableChange{}, ErrEmptyTable
	}
	return change, nil
}
