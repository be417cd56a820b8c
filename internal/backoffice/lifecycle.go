package backoffice

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

var (
	// ErrInvalidTransition rejects a status change the transition table
	// does not allow. The gateway is never called in that case.
	ErrInvalidTransition = errors.New("order status transition not allowed")

	// ErrOrderNotFound means the order is not in the current snapshot.
	ErrOrderNotFound = errors.New("order not found")
)

// Lifecycle drives the one-shot order status machine: Pending moves exactly
// once to Selesai (accept) or Dibatalkan (reject).
type Lifecycle struct {
	gw     gateway.Gateway
	store  *Store
	notify *Notifier
}

func NewLifecycle(gw gateway.Gateway, store *Store, notify *Notifier) *Lifecycle {
	return &Lifecycle{gw: gw, store: store, notify: notify}
}

// Accept completes a pending order.
func (l *Lifecycle) Accept(ctx context.Context, id int64) error {
	return l.transition(ctx, id, domain.OrderSelesai)
}

// Reject cancels a pending order.
func (l *Lifecycle) Reject(ctx context.Context, id int64) error {
	return l.transition(ctx, id, domain.OrderBatal)
}

func (l *Lifecycle) transition(ctx context.Context, id int64, to domain.OrderStatus) error {
	var current *domain.Order
	for _, o := range l.store.Current().Orders {
		if o.ID == id {
			o := o
			current = &o
			break
		}
	}
	if current == nil {
		return ErrOrderNotFound
	}
	if !domain.CanTransition(current.Status, to) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", current.Status, to)
	}

	// The write is conditional on the status the snapshot showed; a stale
	// snapshot loses the race at the gateway instead of overwriting a
	// terminal status.
	if err := l.gw.UpdateOrderStatus(ctx, id, current.Status, to); err != nil {
		if errors.Is(err, gateway.ErrConflict) {
			return errors.Wrapf(ErrInvalidTransition, "%s -> %s", current.Status, to)
		}
		l.notify.Error("Gagal update status")
		return err
	}

	// Patch the cached order in place; the next full refresh reconciles.
	l.store.PatchOrderStatus(id, to)
	l.notify.Success(fmt.Sprintf("Status order #%d diubah ke %s", id, to))
	return nil
}
