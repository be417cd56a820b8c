package backoffice

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

// fakeGateway is an in-memory Gateway with controllable failures and call
// counters.
type fakeGateway struct {
	mu sync.Mutex

	products  []domain.Product
	orders    []domain.Order
	teams     []domain.TeamMember
	features  []domain.Feature
	feedbacks []domain.Feedback

	nextID int64

	// failing maps a table name (or the pseudo table "auth") to an error
	// returned by every operation against it.
	failing map[string]error

	insertCalls       int
	updateCalls       int
	deleteCalls       int
	statusUpdateCalls int

	// onProducts fires inside Products, before data is returned; tests use
	// it to interleave work with an in-flight refresh.
	onProducts func()
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{nextID: 100, failing: map[string]error{}}
}

func (f *fakeGateway) failTable(table string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[table] = errors.Errorf("%s unavailable", table)
}

func (f *fakeGateway) errFor(table string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failing[table]
}

func (f *fakeGateway) Products(ctx context.Context) ([]domain.Product, error) {
	if f.onProducts != nil {
		f.onProducts()
	}
	if err := f.errFor("products"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeGateway) Orders(ctx context.Context) ([]domain.Order, error) {
	if err := f.errFor("orders"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Order(nil), f.orders...), nil
}

func (f *fakeGateway) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	if err := f.errFor("team_members"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.TeamMember(nil), f.teams...), nil
}

func (f *fakeGateway) Features(ctx context.Context) ([]domain.Feature, error) {
	if err := f.errFor("features"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Feature(nil), f.features...), nil
}

func (f *fakeGateway) Feedbacks(ctx context.Context) ([]domain.Feedback, error) {
	if err := f.errFor("feedbacks"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Feedback(nil), f.feedbacks...), nil
}

func (f *fakeGateway) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, gateway.ErrNotFound
}

func (f *fakeGateway) Insert(ctx context.Context, table string, row interface{}) error {
	if err := f.errFor(table); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	f.nextID++
	switch r := row.(type) {
	case *domain.Product:
		r.ID = f.nextID
		f.products = append(f.products, *r)
	case *domain.Order:
		r.ID = f.nextID
		f.orders = append(f.orders, *r)
	case *domain.TeamMember:
		r.ID = f.nextID
		f.teams = append(f.teams, *r)
	case *domain.Feature:
		r.ID = f.nextID
		f.features = append(f.features, *r)
	case *domain.Feedback:
		r.ID = f.nextID
		f.feedbacks = append(f.feedbacks, *r)
	default:
		return errors.Errorf("unexpected row type %T", row)
	}
	return nil
}

func (f *fakeGateway) Update(ctx context.Context, table string, id int64, row interface{}) error {
	if err := f.errFor(table); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	switch r := row.(type) {
	case *domain.Product:
		for i := range f.products {
			if f.products[i].ID == id {
				r.ID = id
				f.products[i] = *r
				return nil
			}
		}
	case *domain.TeamMember:
		for i := range f.teams {
			if f.teams[i].ID == id {
				r.ID = id
				f.teams[i] = *r
				return nil
			}
		}
	case *domain.Feature:
		for i := range f.features {
			if f.features[i].ID == id {
				r.ID = id
				f.features[i] = *r
				return nil
			}
		}
	}
	return gateway.ErrNotFound
}

func (f *fakeGateway) Delete(ctx context.Context, table string, ids []int64) error {
	if err := f.errFor(table); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	drop := map[int64]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	switch table {
	case "products":
		kept := f.products[:0]
		for _, p := range f.products {
			if !drop[p.ID] {
				kept = append(kept, p)
			}
		}
		f.products = kept
	case "team_members":
		kept := f.teams[:0]
		for _, t := range f.teams {
			if !drop[t.ID] {
				kept = append(kept, t)
			}
		}
		f.teams = kept
	case "features":
		kept := f.features[:0]
		for _, ft := range f.features {
			if !drop[ft.ID] {
				kept = append(kept, ft)
			}
		}
		f.features = kept
	case "feedbacks":
		kept := f.feedbacks[:0]
		for _, fb := range f.feedbacks {
			if !drop[fb.ID] {
				kept = append(kept, fb)
			}
		}
		f.feedbacks = kept
	}
	return nil
}

func (f *fakeGateway) UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	if err := f.errFor("orders"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusUpdateCalls++
	for i := range f.orders {
		if f.orders[i].ID == id {
			if f.orders[i].Status != from {
				return gateway.ErrConflict
			}
			f.orders[i].Status = to
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (f *fakeGateway) SignIn(ctx context.Context, email, password string) (*domain.SysOpr, error) {
	if err := f.errFor("auth"); err != nil {
		return nil, err
	}
	if email == "admin@upgradeats.id" && password == "upgradeats" {
		return &domain.SysOpr{ID: 1, Email: email, Level: "super", Status: "enabled"}, nil
	}
	return nil, gateway.ErrInvalidCredentials
}

func (f *fakeGateway) OperatorByEmail(ctx context.Context, email string) (*domain.SysOpr, error) {
	if err := f.errFor("auth"); err != nil {
		return nil, err
	}
	return &domain.SysOpr{ID: 1, Email: email, Level: "super", Status: "enabled"}, nil
}

func (f *fakeGateway) WriteOprLog(ctx context.Context, log *domain.SysOprLog) error {
	return nil
}

var _ gateway.Gateway = (*fakeGateway)(nil)
