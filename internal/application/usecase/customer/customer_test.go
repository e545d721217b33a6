package customer

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/DioGolang/GoSlices/pkg/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T) *mediator.Dispatcher {
	t.Helper()
	slices := database.NewMemorySlices(nil, logger.NewNop(), metrics.Nop{})
	reg := mediator.NewRegistry().Use(mediator.NewValidationBehavior(validation.New()))
	Register(reg, NewHandlers(slices.Customers))
	d, err := reg.Build(Requests()...)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }

func TestCreateCustomer(t *testing.T) {
	//Arrange
	d := newDispatcher(t)
	ctx := context.Background()

	//Act
	c, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Ada", Email: "ada@example.com", PhoneNumber: strPtr("  555-0100 ")})

	//Assert
	require.NoError(t, err)
	require.NotNil(t, c.PhoneNumber)
	assert.Equal(t, "555-0100", *c.PhoneNumber)
	_, err = mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Imposter", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateCustomer_RejectsLongPhone(t *testing.T) {
	d := newDispatcher(t)

	_, err := mediator.Send[CustomerDTO](context.Background(), d, CreateCustomer{
		Name: "Ada", Email: "ada@example.com", PhoneNumber: strPtr("012345678901234567890"),
	})

	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "phone_number", apperr.ViolationsOf(err)[0].Field)
}

func TestUpdateCustomer(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	a, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Ada", Email: "ada@example.com", PhoneNumber: strPtr("1")})
	require.NoError(t, err)
	_, err = mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	out, err := mediator.Send[CustomerDTO](ctx, d, UpdateCustomer{ID: a.ID, Name: "Ada L", Email: "ada@example.com", PhoneNumber: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "Ada L", out.Name)
	assert.Nil(t, out.PhoneNumber)

	_, err = mediator.Send[CustomerDTO](ctx, d, UpdateCustomer{ID: a.ID, Name: "Ada", Email: "bob@example.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestValidateCustomer(t *testing.T) {
	//Arrange
	d := newDispatcher(t)
	ctx := context.Background()
	active, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	inactive, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	_, err = mediator.Send[CustomerDTO](ctx, d, DeactivateCustomer{ID: inactive.ID})
	require.NoError(t, err)

	tests := []struct {
		name string
		id   string
		want ValidationResult
	}{
		{"active", active.ID, ValidationResult{IsValid: true}},
		{"inactive", inactive.ID, ValidationResult{Reason: ReasonInactive}},
		{"unknown", uuid.NewString(), ValidationResult{Reason: ReasonNotFound}},
		{"malformed", "42", ValidationResult{Reason: ReasonInvalidID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			got, err := mediator.Send[ValidationResult](ctx, d, ValidateCustomer{CustomerID: tt.id})

			//Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActivateCustomer(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	c, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = mediator.Send[CustomerDTO](ctx, d, ActivateCustomer{ID: c.ID})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = mediator.Send[CustomerDTO](ctx, d, DeactivateCustomer{ID: c.ID})
	require.NoError(t, err)
	out, err := mediator.Send[CustomerDTO](ctx, d, ActivateCustomer{ID: c.ID})
	require.NoError(t, err)
	assert.True(t, out.IsActive)

	page, err := mediator.Send[pagination.Page[CustomerDTO]](ctx, d, ListCustomers{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
}

func TestGetCustomer_AbsentIsNil(t *testing.T) {
	d := newDispatcher(t)

	got, err := mediator.Send[*CustomerDTO](context.Background(), d, GetCustomer{ID: uuid.NewString()})

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateCustomer_ConcurrentSameEmailCreatesOne(t *testing.T) {
	//Arrange
	d := newDispatcher(t)
	ctx := context.Background()
	const callers = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	//Act
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Ana", Email: "ana@example.com"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case apperr.KindOf(err) == apperr.KindConflict:
				conflicts++
			}
		}()
	}
	wg.Wait()

	//Assert
	assert.Equal(t, 1, created)
	assert.Equal(t, callers-1, conflicts)
	page, err := mediator.Send[pagination.Page[CustomerDTO]](ctx, d, ListCustomers{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
}

func TestListCustomers_HugePageNumberIsEmpty(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	_, err := mediator.Send[CustomerDTO](ctx, d, CreateCustomer{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	page, err := mediator.Send[pagination.Page[CustomerDTO]](ctx, d, ListCustomers{PageNumber: math.MaxInt64 / 5, PageSize: 10})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalCount)
}
