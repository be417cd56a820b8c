package gateway

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/upgradeats/upgradeats/internal/domain"
)

// tableModels maps the gateway table names onto their gorm models. Table
// names outside this map are rejected before any SQL is built.
var tableModels = map[string]func() interface{}{
	domain.Product{}.TableName():    func() interface{} { return &domain.Product{} },
	domain.Order{}.TableName():      func() interface{} { return &domain.Order{} },
	domain.TeamMember{}.TableName(): func() interface{} { return &domain.TeamMember{} },
	domain.Feature{}.TableName():    func() interface{} { return &domain.Feature{} },
	domain.Feedback{}.TableName():   func() interface{} { return &domain.Feedback{} },
}

// Store is the gorm-backed Gateway implementation.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ Gateway = (*Store)(nil)

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return rows, nil
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	var rows []domain.Order
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	return rows, nil
}

func (s *Store) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	var rows []domain.TeamMember
	err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query team members")
	}
	return rows, nil
}

func (s *Store) Features(ctx context.Context) ([]domain.Feature, error) {
	var rows []domain.Feature
	err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query features")
	}
	return rows, nil
}

func (s *Store) Feedbacks(ctx context.Context) ([]domain.Feedback, error) {
	var rows []domain.Feedback
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query feedbacks")
	}
	return rows, nil
}

func (s *Store) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrap(err, "query product")
	}
	return &p, nil
}

func (s *Store) Insert(ctx context.Context, table string, row interface{}) error {
	if _, ok := tableModels[table]; !ok {
		return errors.Errorf("unknown table %q", table)
	}
	if err := s.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return errors.Wrapf(err, "insert into %s", table)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, table string, id int64, row interface{}) error {
	proto, ok := tableModels[table]
	if !ok {
		return errors.Errorf("unknown table %q", table)
	}
	res := s.db.WithContext(ctx).Model(proto()).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(row)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update %s id=%d", table, id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, table string, ids []int64) error {
	proto, ok := tableModels[table]
	if !ok {
		return errors.Errorf("unknown table %q", table)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(proto()).Error; err != nil {
		return errors.Wrapf(err, "delete from %s", table)
	}
	return nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ? and status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update order %d status", id)
	}
	// Zero rows means the order moved (or vanished) under us; the caller
	// treats that the same as a transition-table refusal.
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *Store) SignIn(ctx context.Context, email, password string) (*domain.SysOpr, error) {
	var opr domain.SysOpr
	err := s.db.WithContext(ctx).Where("email = ? and status = ?", email, "enabled").First(&opr).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, errors.Wrap(err, "query operator")
	}
	if bcrypt.CompareHashAndPassword([]byte(opr.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.db.WithContext(ctx).Model(&domain.SysOpr{}).
		Where("id = ?", opr.ID).
		Update("last_login", time.Now()).Error; err != nil {
		zap.L().Warn("failed to record last login", zap.Error(err))
	}
	return &opr, nil
}

func (s *Store) OperatorByEmail(ctx context.Context, email string) (*domain.SysOpr, error) {
	var opr domain.SysOpr
	err := s.db.WithContext(ctx).Where("email = ? and status = ?", email, "enabled").First(&opr).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrap(err, "query operator")
	}
	return &opr, nil
}

func (s *Store) WriteOprLog(ctx context.Context, log *domain.SysOprLog) error {
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		zap.L().Warn("failed to write operator log", zap.Error(err))
		return errors.Wrap(err, "write oprlog")
	}
	return nil
}
