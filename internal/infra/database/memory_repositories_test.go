package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationFirst() pagination.Request {
	return pagination.Request{PageNumber: 1, PageSize: 10}
}

func ptr[T any](v T) *T { return &v }

func TestMemoryProductRepository_FiltersBeforePaging(t *testing.T) {
	//Arrange
	slices := NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	ctx := context.Background()
	require.NoError(t, slices.Products.Do(ctx, func(ctx context.Context, repo outbound.ProductRepository) error {
		for i := range 25 {
			p, err := entity.NewProduct(fmt.Sprintf("item-%02d", i), "", float64(i), "", i%2, nil)
			if err != nil {
				return err
			}
			if err := repo.Add(ctx, p); err != nil {
				return err
			}
		}
		return nil
	}))
	repo := slices.Products.Scope().Repositories()

	//Act
	page, err := repo.List(ctx, outbound.ProductFilter{
		AvailableOnly: true,
		MinPrice:      ptr(5.0),
		MaxPrice:      ptr(19.0),
	}, pagination.Request{PageNumber: 1, PageSize: 3})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 8, page.TotalCount) // odd prices 5..19
	require.Len(t, page.Items, 3)
	for _, p := range page.Items {
		assert.True(t, p.IsAvailable(1))
	}
}

func TestMemoryProductRepository_NameFilterIsCaseInsensitive(t *testing.T) {
	slices := NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	ctx := context.Background()
	require.NoError(t, slices.Products.Do(ctx, func(ctx context.Context, repo outbound.ProductRepository) error {
		for _, name := range []string{"Red Chair", "Blue chair", "Table"} {
			p, _ := entity.NewProduct(name, "", 1, "", 1, nil)
			_ = repo.Add(ctx, p)
		}
		return nil
	}))

	page, err := slices.Products.Scope().Repositories().List(ctx, outbound.ProductFilter{Name: "CHAIR"}, paginationFirst())

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
}

func TestMemoryEstruturaRepository_DeleteAndStatusFilter(t *testing.T) {
	slices := NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	ctx := context.Background()
	from := time.Now().UTC()
	mk := func(status entity.EstruturaStatus) *entity.Estrutura {
		e, err := entity.NewEstrutura(entity.EstruturaData{
			Name: "E", TypeCode: 1, ValidFrom: from, ValidUntil: from.Add(time.Hour), Status: status,
		})
		require.NoError(t, err)
		return e
	}
	active, inactive := mk(entity.EstruturaActive), mk(entity.EstruturaInactive)
	require.NoError(t, slices.Estruturas.Do(ctx, func(ctx context.Context, repo outbound.EstruturaRepository) error {
		_ = repo.Add(ctx, active)
		return repo.Add(ctx, inactive)
	}))

	require.NoError(t, slices.Estruturas.Do(ctx, func(ctx context.Context, repo outbound.EstruturaRepository) error {
		e, err := repo.FindByID(ctx, active.ID())
		if err != nil {
			return err
		}
		if err := e.MarkDeleted(); err != nil {
			return err
		}
		return repo.Delete(ctx, e)
	}))

	repo := slices.Estruturas.Scope().Repositories()
	_, err := repo.FindByID(ctx, active.ID())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	page, err := repo.List(ctx, outbound.EstruturaFilter{Status: ptr(entity.EstruturaInactive)}, paginationFirst())
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	all, err := repo.List(ctx, outbound.EstruturaFilter{}, paginationFirst())
	require.NoError(t, err)
	assert.Equal(t, 1, all.TotalCount)
}

func TestMemoryUserRepository_FindByEmail(t *testing.T) {
	slices := NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	ctx := context.Background()
	u, _ := entity.NewUser("Ada", "ada@example.com")
	require.NoError(t, slices.Users.Do(ctx, func(ctx context.Context, repo outbound.UserRepository) error {
		return repo.Add(ctx, u)
	}))
	repo := slices.Users.Scope().Repositories()

	email, _ := entity.NewEmail("ADA@example.com")
	found, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())

	other, _ := entity.NewEmail("bob@example.com")
	_, err = repo.FindByEmail(ctx, other)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMemoryStore_UniqueEmailHeldAtCommit(t *testing.T) {
	//Arrange
	slices := NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	ctx := context.Background()
	first, second := slices.Customers.Scope(), slices.Customers.Scope()
	require.NoError(t, first.Begin(ctx))
	require.NoError(t, second.Begin(ctx))
	a, _ := entity.NewCustomer("Ana", "ana@example.com", nil)
	b, _ := entity.NewCustomer("Ana Two", "ANA@example.com", nil)

	// neither scope sees the other's uncommitted row
	_, err := second.Repositories().FindByEmail(ctx, a.Email())
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, first.Repositories().Add(ctx, a))
	require.NoError(t, second.Repositories().Add(ctx, b))
	_, err = first.SaveChanges(ctx)
	require.NoError(t, err)
	_, err = second.SaveChanges(ctx)
	require.NoError(t, err)

	//Act
	firstErr := first.Commit(ctx)
	secondErr := second.Commit(ctx)

	//Assert
	require.NoError(t, firstErr)
	assert.ErrorIs(t, secondErr, apperr.ErrConflict)
	page, err := slices.Customers.Scope().Repositories().List(ctx, outbound.CustomerFilter{}, paginationFirst())
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	assert.Len(t, b.PendingEvents(), 1)
}

func TestMemoryStore_UniqueEmailReleasedByUpdate(t *testing.T) {
	slices := NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	ctx := context.Background()
	ada, _ := entity.NewUser("Ada", "ada@example.com")
	bob, _ := entity.NewUser("Bob", "bob@example.com")
	require.NoError(t, slices.Users.Do(ctx, func(ctx context.Context, repo outbound.UserRepository) error {
		require.NoError(t, repo.Add(ctx, ada))
		return repo.Add(ctx, bob)
	}))

	tests := []struct {
		name    string
		mutate  func(repo outbound.UserRepository) error
		wantErr error
	}{
		{
			name: "taking a held address conflicts",
			mutate: func(repo outbound.UserRepository) error {
				u, _ := repo.FindByID(ctx, bob.ID())
				_ = u.Update("Bob", "ada@example.com")
				return repo.Update(ctx, u)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name: "an address freed in the same transaction can be taken",
			mutate: func(repo outbound.UserRepository) error {
				a, _ := repo.FindByID(ctx, ada.ID())
				b, _ := repo.FindByID(ctx, bob.ID())
				_ = b.Update("Bob", "ada@example.com")
				_ = a.Update("Ada", "ada.new@example.com")
				if err := repo.Update(ctx, b); err != nil {
					return err
				}
				return repo.Update(ctx, a)
			},
		},
		{
			name: "the old address is free afterwards",
			mutate: func(repo outbound.UserRepository) error {
				u, _ := entity.NewUser("Cid", "bob@example.com")
				return repo.Add(ctx, u)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := slices.Users.Do(ctx, func(ctx context.Context, repo outbound.UserRepository) error {
				return tt.mutate(repo)
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
