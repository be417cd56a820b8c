package backoffice

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"

	"github.com/upgradeats/upgradeats/internal/gateway"
)

// Console is the admin dashboard state machine: one snapshot cache, one list
// view, one notification slot, plus the mutation and lifecycle controllers
// wired around them. Every console state transition runs under a single
// mutex, mirroring the single-threaded event loop the UI presents; cache
// refreshes are the exception, the snapshot store serializes those itself.
type Console struct {
	mu sync.Mutex

	store     *Store
	view      *ListView
	notify    *Notifier
	mutator   *Mutator
	lifecycle *Lifecycle
}

func NewConsole(gw gateway.Gateway, bus EventBus.Bus) *Console {
	store := NewStore(gw)
	notify := NewNotifier(bus)
	return &Console{
		store:     store,
		view:      NewListView(),
		notify:    notify,
		mutator:   NewMutator(gw, store, notify),
		lifecycle: NewLifecycle(gw, store, notify),
	}
}

func (c *Console) Store() *Store { return c.store }

func (c *Console) Notifier() *Notifier { return c.notify }

// Refresh re-fetches all collections; a failure keeps the previous snapshot
// and raises an error notification.
func (c *Console) Refresh(ctx context.Context) (*Snapshot, error) {
	snap, err := c.store.Refresh(ctx)
	if err != nil {
		c.notify.Error("Gagal memuat data: " + err.Error())
	}
	return snap, err
}

// List applies tab/query/page transitions in order and renders the resulting
// page. Tab and query changes carry their reset semantics (see ListView).
func (c *Console) List(tab, query string, page int) PageResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tab != "" {
		c.view.SetTab(tab)
	}
	c.view.SetQuery(query)
	if page > 0 {
		c.view.SetPage(page)
	}

	rows := c.store.Current().Collection(c.view.Tab())
	return c.view.Paginate(c.view.Filter(rows))
}

// ToggleSelect flips one id in the multi-select set and returns the set.
func (c *Console) ToggleSelect(id int64) []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.ToggleSelect(id)
	return c.view.Selected()
}

// Submit hands the form to the mutation orchestrator for the active tab's
// table.
func (c *Console) Submit(ctx context.Context, tab string, form map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := TableForTab(tab)
	if table == "" {
		return ErrUnknownTab(tab)
	}
	return c.mutator.Submit(ctx, table, form)
}

// Delete removes one row from the active tab's table after confirmation.
func (c *Console) Delete(ctx context.Context, tab string, id int64, confirmed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := TableForTab(tab)
	if table == "" {
		return ErrUnknownTab(tab)
	}
	return c.mutator.Delete(ctx, table, id, confirmed)
}

// BulkDeleteSelected deletes the current selection in one gateway call and
// clears the selection on success.
func (c *Console) BulkDeleteSelected(ctx context.Context, confirmed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tab := c.view.Tab()
	table := TableForTab(tab)
	if table == "" {
		return ErrUnknownTab(tab)
	}
	if err := c.mutator.BulkDelete(ctx, table, c.view.Selected(), confirmed); err != nil {
		return err
	}
	c.view.ClearSelection()
	return nil
}

// AcceptOrder and RejectOrder drive the order status machine. Both hold the
// console mutex for the whole transition so the guard and the write act on
// the same state; of two racing actions on one order, exactly one wins.
func (c *Console) AcceptOrder(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lifecycle.Accept(ctx, id)
}

func (c *Console) RejectOrder(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lifecycle.Reject(ctx, id)
}
