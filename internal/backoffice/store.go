package backoffice

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

// Snapshot is one committed view of all five collections plus the stats
// derived from them. Snapshots are immutable once committed; readers never
// observe a partially refreshed mix.
type Snapshot struct {
	Products  []domain.Product    `json:"products"`
	Orders    []domain.Order      `json:"orders"`
	Teams     []domain.TeamMember `json:"teams"`
	Features  []domain.Feature    `json:"features"`
	Feedbacks []domain.Feedback   `json:"feedbacks"`
	Stats     Stats               `json:"stats"`
	Version   uint64              `json:"version"`
}

// Store holds the latest committed snapshot and refreshes it all-or-nothing
// from the gateway.
type Store struct {
	gw gateway.Gateway

	// seq tags every refresh; a completion whose tag is no longer the
	// latest issued is discarded so racing refreshes cannot commit out of
	// order.
	seq     uint64
	version uint64

	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore(gw gateway.Gateway) *Store {
	return &Store{gw: gw, snap: &Snapshot{}}
}

// Current returns the latest committed snapshot. Never nil, never partial.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Refresh queries the five collections concurrently and swaps the snapshot in
// a single commit. If any query fails the previous snapshot is retained
// untouched, including the collections that did succeed in the same batch. A
// refresh that resolves after a newer one was issued is discarded.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	token := atomic.AddUint64(&s.seq, 1)

	var (
		products  []domain.Product
		orders    []domain.Order
		teams     []domain.TeamMember
		features  []domain.Feature
		feedbacks []domain.Feedback
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.gw.Products(gctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.gw.Orders(gctx)
		return err
	})
	g.Go(func() (err error) {
		teams, err = s.gw.TeamMembers(gctx)
		return err
	})
	g.Go(func() (err error) {
		features, err = s.gw.Features(gctx)
		return err
	})
	g.Go(func() (err error) {
		feedbacks, err = s.gw.Feedbacks(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return s.Current(), errors.Wrap(err, "refresh data store")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != atomic.LoadUint64(&s.seq) {
		zap.L().Debug("discarding stale refresh", zap.Uint64("token", token))
		return s.snap, nil
	}
	s.version++
	s.snap = &Snapshot{
		Products:  products,
		Orders:    orders,
		Teams:     teams,
		Features:  features,
		Feedbacks: feedbacks,
		Stats:     ComputeStats(orders, products),
		Version:   s.version,
	}
	return s.snap, nil
}

// PatchOrderStatus rewrites the status of a single cached order without a
// full refresh. The next Refresh reconciles with the gateway anyway; this
// keeps the console responsive after a status transition.
func (s *Store) PatchOrderStatus(id int64, status domain.OrderStatus) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, len(s.snap.Orders))
	copy(orders, s.snap.Orders)
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
		}
	}

	s.version++
	next := *s.snap
	next.Orders = orders
	next.Stats = ComputeStats(orders, next.Products)
	next.Version = s.version
	s.snap = &next
	return s.snap
}
