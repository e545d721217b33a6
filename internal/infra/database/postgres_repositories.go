package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/google/uuid"
)

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// notFound maps sql.ErrNoRows onto apperr NotFound and passes other errors through.
func notFound(entityName, key string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(entityName, key)
	}
	return err
}

type PostgresUserRepository struct {
	session *Session[DBTX]
}

func NewPostgresUserRepository(s *Session[DBTX]) *PostgresUserRepository {
	return &PostgresUserRepository{session: s}
}

func userFromRow(r User) *entity.User {
	return entity.RestoreUser(entity.UserState{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: fromNullTime(r.UpdatedAt),
		Revision:  int(r.Revision),
	})
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := New(r.session.Handle()).GetUser(ctx, id)
	if err != nil {
		return nil, notFound("user", id.String(), err)
	}
	return userFromRow(row), nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	row, err := New(r.session.Handle()).GetUserByEmail(ctx, email.String())
	if err != nil {
		return nil, notFound("user", email.String(), err)
	}
	return userFromRow(row), nil
}

func (r *PostgresUserRepository) List(ctx context.Context, f outbound.UserFilter, req pagination.Request) (pagination.Page[*entity.User], error) {
	q := New(r.session.Handle())
	total, err := q.CountUsers(ctx, f.ActiveOnly)
	if err != nil {
		return pagination.Page[*entity.User]{}, err
	}
	rows, err := q.ListUsers(ctx, ListUsersParams{
		ActiveOnly: f.ActiveOnly,
		Limit:      int32(req.Limit()),
		Offset:     int32(req.Offset()),
	})
	if err != nil {
		return pagination.Page[*entity.User]{}, err
	}
	items := make([]*entity.User, len(rows))
	for i, row := range rows {
		items[i] = userFromRow(row)
	}
	return pagination.New(items, int(total), req), nil
}

func (r *PostgresUserRepository) Add(_ context.Context, u *entity.User) error {
	r.session.Stage(u, func(ctx context.Context, h DBTX, _ int) error {
		s := u.State()
		res, err := New(h).InsertUser(ctx, InsertUserParams{
			ID:        s.ID,
			Name:      s.Name,
			Email:     s.Email,
			IsActive:  s.IsActive,
			CreatedAt: s.CreatedAt,
			UpdatedAt: toNullTime(s.UpdatedAt),
		})
		return expectOne("user", res, err)
	})
	return nil
}

func (r *PostgresUserRepository) Update(_ context.Context, u *entity.User) error {
	r.session.Stage(u, func(ctx context.Context, h DBTX, revision int) error {
		s := u.State()
		res, err := New(h).UpdateUser(ctx, UpdateUserParams{
			ID:        s.ID,
			Revision:  int32(revision),
			Name:      s.Name,
			Email:     s.Email,
			IsActive:  s.IsActive,
			UpdatedAt: toNullTime(s.UpdatedAt),
		})
		return expectOne("user", res, err)
	})
	return nil
}

type PostgresProductRepository struct {
	session *Session[DBTX]
}

func NewPostgresProductRepository(s *Session[DBTX]) *PostgresProductRepository {
	return &PostgresProductRepository{session: s}
}

func productFromRow(r Product) *entity.Product {
	var createdBy *uuid.UUID
	if r.CreatedBy.Valid {
		id := r.CreatedBy.UUID
		createdBy = &id
	}
	return entity.RestoreProduct(entity.ProductState{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Currency:      r.Currency,
		StockQuantity: int(r.StockQuantity),
		IsActive:      r.IsActive,
		CreatedBy:     createdBy,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     fromNullTime(r.UpdatedAt),
		Revision:      int(r.Revision),
	})
}

func (r *PostgresProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row, err := New(r.session.Handle()).GetProduct(ctx, id)
	if err != nil {
		return nil, notFound("product", id.String(), err)
	}
	return productFromRow(row), nil
}

func (r *PostgresProductRepository) List(ctx context.Context, f outbound.ProductFilter, req pagination.Request) (pagination.Page[*entity.Product], error) {
	q := New(r.session.Handle())
	total, err := q.CountProducts(ctx, CountProductsParams{
		AvailableOnly: f.AvailableOnly,
		MinPrice:      toNullFloat(f.MinPrice),
		MaxPrice:      toNullFloat(f.MaxPrice),
		Name:          f.Name,
	})
	if err != nil {
		return pagination.Page[*entity.Product]{}, err
	}
	rows, err := q.ListProducts(ctx, ListProductsParams{
		AvailableOnly: f.AvailableOnly,
		MinPrice:      toNullFloat(f.MinPrice),
		MaxPrice:      toNullFloat(f.MaxPrice),
		Name:          f.Name,
		Limit:         int32(req.Limit()),
		Offset:        int32(req.Offset()),
	})
	if err != nil {
		return pagination.Page[*entity.Product]{}, err
	}
	items := make([]*entity.Product, len(rows))
	for i, row := range rows {
		items[i] = productFromRow(row)
	}
	return pagination.New(items, int(total), req), nil
}

func (r *PostgresProductRepository) Add(_ context.Context, p *entity.Product) error {
	r.session.Stage(p, func(ctx context.Context, h DBTX, _ int) error {
		s := p.State()
		var createdBy uuid.NullUUID
		if s.CreatedBy != nil {
			createdBy = uuid.NullUUID{UUID: *s.CreatedBy, Valid: true}
		}
		res, err := New(h).InsertProduct(ctx, InsertProductParams{
			ID:            s.ID,
			Name:          s.Name,
			Description:   s.Description,
			Price:         s.Price,
			Currency:      s.Currency,
			StockQuantity: int32(s.StockQuantity),
			IsActive:      s.IsActive,
			CreatedBy:     createdBy,
			CreatedAt:     s.CreatedAt,
			UpdatedAt:     toNullTime(s.UpdatedAt),
		})
		return expectOne("product", res, err)
	})
	return nil
}

func (r *PostgresProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.session.Stage(p, func(ctx context.Context, h DBTX, revision int) error {
		s := p.State()
		res, err := New(h).UpdateProduct(ctx, UpdateProductParams{
			ID:            s.ID,
			Revision:      int32(revision),
			Name:          s.Name,
			Description:   s.Description,
			Price:         s.Price,
			Currency:      s.Currency,
			StockQuantity: int32(s.StockQuantity),
			IsActive:      s.IsActive,
			UpdatedAt:     toNullTime(s.UpdatedAt),
		})
		return expectOne("product", res, err)
	})
	return nil
}

type PostgresCustomerRepository struct {
	session *Session[DBTX]
}

func NewPostgresCustomerRepository(s *Session[DBTX]) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{session: s}
}

func customerFromRow(r Customer) *entity.Customer {
	return entity.RestoreCustomer(entity.CustomerState{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: fromNullString(r.PhoneNumber),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   fromNullTime(r.UpdatedAt),
		Revision:    int(r.Revision),
	})
}

func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	row, err := New(r.session.Handle()).GetCustomer(ctx, id)
	if err != nil {
		return nil, notFound("customer", id.String(), err)
	}
	return customerFromRow(row), nil
}

func (r *PostgresCustomerRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.Customer, error) {
	row, err := New(r.session.Handle()).GetCustomerByEmail(ctx, email.String())
	if err != nil {
		return nil, notFound("customer", email.String(), err)
	}
	return customerFromRow(row), nil
}

func (r *PostgresCustomerRepository) List(ctx context.Context, f outbound.CustomerFilter, req pagination.Request) (pagination.Page[*entity.Customer], error) {
	q := New(r.session.Handle())
	total, err := q.CountCustomers(ctx, f.ActiveOnly)
	if err != nil {
		return pagination.Page[*entity.Customer]{}, err
	}
	rows, err := q.ListCustomers(ctx, ListCustomersParams{
		ActiveOnly: f.ActiveOnly,
		Limit:      int32(req.Limit()),
		Offset:     int32(req.Offset()),
	})
	if err != nil {
		return pagination.Page[*entity.Customer]{}, err
	}
	items := make([]*entity.Customer, len(rows))
	for i, row := range rows {
		items[i] = customerFromRow(row)
	}
	return pagination.New(items, int(total), req), nil
}

func (r *PostgresCustomerRepository) Add(_ context.Context, c *entity.Customer) error {
	r.session.Stage(c, func(ctx context.Context, h DBTX, _ int) error {
		s := c.State()
		res, err := New(h).InsertCustomer(ctx, InsertCustomerParams{
			ID:          s.ID,
			Name:        s.Name,
			Email:       s.Email,
			PhoneNumber: toNullString(s.PhoneNumber),
			IsActive:    s.IsActive,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   toNullTime(s.UpdatedAt),
		})
		return expectOne("customer", res, err)
	})
	return nil
}

func (r *PostgresCustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.session.Stage(c, func(ctx context.Context, h DBTX, revision int) error {
		s := c.State()
		res, err := New(h).UpdateCustomer(ctx, UpdateCustomerParams{
			ID:          s.ID,
			Revision:    int32(revision),
			Name:        s.Name,
			Email:       s.Email,
			PhoneNumber: toNullString(s.PhoneNumber),
			IsActive:    s.IsActive,
			UpdatedAt:   toNullTime(s.UpdatedAt),
		})
		return expectOne("customer", res, err)
	})
	return nil
}

type PostgresEstruturaRepository struct {
	session *Session[DBTX]
}

func NewPostgresEstruturaRepository(s *Session[DBTX]) *PostgresEstruturaRepository {
	return &PostgresEstruturaRepository{session: s}
}

func estruturaFromRow(r Estrutura) *entity.Estrutura {
	return entity.RestoreEstrutura(entity.EstruturaState{
		ID: r.ID,
		EstruturaData: entity.EstruturaData{
			Name:         r.Name,
			Description:  fromNullString(r.Description),
			TypeCode:     r.TypeCode,
			ExternalCode: r.ExternalCode,
			ValidFrom:    r.ValidFrom.UTC(),
			ValidUntil:   r.ValidUntil.UTC(),
			Status:       entity.EstruturaStatus(r.Status),
		},
		Version:   int(r.Version),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: fromNullTime(r.UpdatedAt),
		Revision:  int(r.Revision),
	})
}

func (r *PostgresEstruturaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Estrutura, error) {
	row, err := New(r.session.Handle()).GetEstrutura(ctx, id)
	if err != nil {
		return nil, notFound("estrutura", id.String(), err)
	}
	return estruturaFromRow(row), nil
}

func (r *PostgresEstruturaRepository) List(ctx context.Context, f outbound.EstruturaFilter, req pagination.Request) (pagination.Page[*entity.Estrutura], error) {
	var status int16
	if f.Status != nil {
		status = int16(*f.Status)
	}
	q := New(r.session.Handle())
	total, err := q.CountEstruturas(ctx, status)
	if err != nil {
		return pagination.Page[*entity.Estrutura]{}, err
	}
	rows, err := q.ListEstruturas(ctx, ListEstruturasParams{
		Status: status,
		Limit:  int32(req.Limit()),
		Offset: int32(req.Offset()),
	})
	if err != nil {
		return pagination.Page[*entity.Estrutura]{}, err
	}
	items := make([]*entity.Estrutura, len(rows))
	for i, row := range rows {
		items[i] = estruturaFromRow(row)
	}
	return pagination.New(items, int(total), req), nil
}

func (r *PostgresEstruturaRepository) Add(_ context.Context, e *entity.Estrutura) error {
	r.session.Stage(e, func(ctx context.Context, h DBTX, _ int) error {
		s := e.State()
		res, err := New(h).InsertEstrutura(ctx, InsertEstruturaParams{
			ID:           s.ID,
			Name:         s.Name,
			Description:  toNullString(s.Description),
			TypeCode:     s.TypeCode,
			ExternalCode: s.ExternalCode,
			ValidFrom:    s.ValidFrom,
			ValidUntil:   s.ValidUntil,
			Version:      int32(s.Version),
			Status:       int16(s.Status),
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    toNullTime(s.UpdatedAt),
		})
		return expectOne("estrutura", res, err)
	})
	return nil
}

func (r *PostgresEstruturaRepository) Update(_ context.Context, e *entity.Estrutura) error {
	r.session.Stage(e, func(ctx context.Context, h DBTX, revision int) error {
		s := e.State()
		res, err := New(h).UpdateEstrutura(ctx, UpdateEstruturaParams{
			ID:           s.ID,
			Revision:     int32(revision),
			Name:         s.Name,
			Description:  toNullString(s.Description),
			TypeCode:     s.TypeCode,
			ExternalCode: s.ExternalCode,
			ValidFrom:    s.ValidFrom,
			ValidUntil:   s.ValidUntil,
			Version:      int32(s.Version),
			Status:       int16(s.Status),
			UpdatedAt:    toNullTime(s.UpdatedAt),
		})
		return expectOne("estrutura", res, err)
	})
	return nil
}

func (r *PostgresEstruturaRepository) Delete(_ context.Context, e *entity.Estrutura) error {
	r.session.Stage(e, func(ctx context.Context, h DBTX, revision int) error {
		res, err := New(h).DeleteEstrutura(ctx, e.ID(), int32(revision))
		return expectOne("estrutura", res, err)
	})
	return nil
}

var (
	_ outbound.UserRepository      = (*PostgresUserRepository)(nil)
	_ outbound.ProductRepository   = (*PostgresProductRepository)(nil)
	_ outbound.CustomerRepository  = (*PostgresCustomerRepository)(nil)
	_ outbound.EstruturaRepository = (*PostgresEstruturaRepository)(nil)
	_ Backend[DBTX]                = (*Postgres)(nil)
	_ Backend[*MemoryHandle]       = (*MemoryStore)(nil)
)
