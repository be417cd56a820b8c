// Package gateway is the boundary to the hosted data platform. Everything
// above it (cache, console, handlers) depends on the Gateway interface only;
// the gorm implementation lives in store.go and tests substitute fakes.
package gateway

import (
	"context"

	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/domain"
)

var (
	// ErrInvalidCredentials distinguishes a bad email/password pair from a
	// connection-level failure during sign-in.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrNotFound is returned when a single-row lookup resolves nothing.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a conditional write matched no row
	// because another writer changed it first.
	ErrConflict = errors.New("row changed concurrently")
)

// Gateway exposes the table-style CRUD operations and operator auth the back
// office consumes. Full-table reads use a fixed ordering per collection:
// products, team members and features by id ascending, orders and feedback by
// created_at descending.
type Gateway interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Orders(ctx context.Context) ([]domain.Order, error)
	TeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	Features(ctx context.Context) ([]domain.Feature, error)
	Feedbacks(ctx context.Context) ([]domain.Feedback, error)

	ProductByID(ctx context.Context, id int64) (*domain.Product, error)

	// Insert creates a row in the named table; the row's id is assigned by
	// the gateway and written back into the value.
	Insert(ctx context.Context, table string, row interface{}) error
	// Update replaces every mutable column of the identified row with the
	// values from row (id and created_at are never touched).
	Update(ctx context.Context, table string, id int64, row interface{}) error
	// Delete removes the identified rows in a single call.
	Delete(ctx context.Context, table string, ids []int64) error

	// UpdateOrderStatus is the status-only patch used by the order
	// lifecycle controller. The write is conditional on the row still
	// holding from; ErrConflict means another writer got there first.
	UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error

	// SignIn verifies operator credentials and records the login time.
	SignIn(ctx context.Context, email, password string) (*domain.SysOpr, error)
	// OperatorByEmail resolves the operator behind an existing session.
	OperatorByEmail(ctx context.Context, email string) (*domain.SysOpr, error)
	// WriteOprLog appends an audit entry; failures are logged, never fatal.
	WriteOprLog(ctx context.Context, log *domain.SysOprLog) error
}
