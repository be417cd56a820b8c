package backoffice

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

var (
	// ErrNotConfirmed guards destructive operations behind an explicit
	// confirmation from the operator.
	ErrNotConfirmed = errors.New("operation requires confirmation")

	// ErrOrdersImmutable rejects delete operations against the orders
	// collection; orders only ever change via the lifecycle controller.
	ErrOrdersImmutable = errors.New("orders cannot be deleted")
)

// Mutator serializes console form state into gateway writes and keeps the
// snapshot cache consistent afterwards. Presence of an id in the form is the
// sole signal distinguishing update from insert.
type Mutator struct {
	gw     gateway.Gateway
	store  *Store
	notify *Notifier
}

func NewMutator(gw gateway.Gateway, store *Store, notify *Notifier) *Mutator {
	return &Mutator{gw: gw, store: store, notify: notify}
}

// Submit writes the form into the named table. On success the form's modal is
// done: the cache refreshes and a success notification is raised. On failure
// the error notification carries the gateway message and the caller keeps the
// form open with its values intact for a retry.
func (m *Mutator) Submit(ctx context.Context, table string, form map[string]interface{}) error {
	id := cast.ToInt64(form["id"])

	row := newModel(table)
	if row == nil {
		return errors.Errorf("unknown table %q", table)
	}
	if err := decodeForm(form, row); err != nil {
		m.notify.Error(err.Error())
		return err
	}

	if f, ok := row.(*domain.Feature); ok {
		f.Icon = string(domain.NormalizeIcon(f.Icon))
	}

	var err error
	if id > 0 {
		err = m.gw.Update(ctx, table, id, row)
	} else {
		err = m.gw.Insert(ctx, table, row)
	}
	if err != nil {
		m.notify.Error(err.Error())
		return err
	}

	m.notify.Success("Data berhasil disimpan!")
	m.refresh(ctx)
	return nil
}

// Delete removes a single row after explicit confirmation.
func (m *Mutator) Delete(ctx context.Context, table string, id int64, confirmed bool) error {
	return m.BulkDelete(ctx, table, []int64{id}, confirmed)
}

// BulkDelete removes a set of rows in one gateway call after explicit
// confirmation.
func (m *Mutator) BulkDelete(ctx context.Context, table string, ids []int64, confirmed bool) error {
	if table == (domain.Order{}).TableName() {
		return ErrOrdersImmutable
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if len(ids) == 0 {
		return nil
	}
	if err := m.gw.Delete(ctx, table, ids); err != nil {
		m.notify.Error(err.Error())
		return err
	}
	m.notify.Success("Data dihapus")
	m.refresh(ctx)
	return nil
}

func (m *Mutator) refresh(ctx context.Context) {
	if _, err := m.store.Refresh(ctx); err != nil {
		zap.L().Error("refresh after mutation failed", zap.Error(err))
		m.notify.Error("Gagal memuat data: " + err.Error())
	}
}

func decodeForm(form map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "build form decoder")
	}
	if err := dec.Decode(form); err != nil {
		return errors.Wrap(err, "decode form state")
	}
	return nil
}
