package entity

import (
	"testing"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *Product {
	t.Helper()
	p, err := NewProduct("Keyboard", "mechanical", 49.9, "", stock, nil)
	require.NoError(t, err)
	p.PullEvents()
	return p
}

func TestNewProduct(t *testing.T) {
	owner := uuid.New()

	p, err := NewProduct("Keyboard", "mechanical", 49.9, "brl", 3, &owner)

	require.NoError(t, err)
	assert.Equal(t, "BRL", p.Price().Currency())
	assert.Equal(t, &owner, p.CreatedBy())
	pending := p.PendingEvents()
	require.Len(t, pending, 1)
	created, ok := pending[0].(ProductCreated)
	require.True(t, ok)
	assert.Equal(t, owner.String(), created.CreatedBy)
}

func TestNewProduct_DefaultsCurrency(t *testing.T) {
	p := newTestProduct(t, 1)
	assert.Equal(t, DefaultCurrency, p.Price().Currency())
}

func TestNewProduct_ValidationErrors(t *testing.T) {
	p, err := NewProduct("", "", -1, "USD", -5, nil)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Len(t, apperr.ViolationsOf(err), 3)
}

func TestProduct_UpdateStock(t *testing.T) {
	p := newTestProduct(t, 5)

	require.NoError(t, p.UpdateStock(8))

	assert.Equal(t, 8, p.StockQuantity())
	pending := p.PullEvents()
	require.Len(t, pending, 1)
	changed := pending[0].(ProductStockChanged)
	assert.Equal(t, 5, changed.PreviousStock)
	assert.Equal(t, 8, changed.NewStock)
}

func TestProduct_FailedMutatorsLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product) error
	}{
		{"negative stock", func(p *Product) error { return p.UpdateStock(-1) }},
		{"negative price", func(p *Product) error { return p.UpdatePrice(-1, "USD") }},
		{"empty name", func(p *Product) error { return p.UpdateDetails("", "x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProduct(t, 5)
			before := p.State()

			err := tt.mutate(p)

			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, before, p.State())
			assert.Empty(t, p.PendingEvents())
		})
	}
}

func TestProduct_UpdatePriceKeepsCurrency(t *testing.T) {
	p, err := NewProduct("Keyboard", "", 10, "EUR", 1, nil)
	require.NoError(t, err)

	require.NoError(t, p.UpdatePrice(12, ""))

	assert.True(t, p.Price().Equals(Money{amount: 12, currency: "EUR"}))
}

func TestProduct_Deactivate(t *testing.T) {
	p := newTestProduct(t, 5)

	require.NoError(t, p.Deactivate())

	assert.False(t, p.IsAvailable(1))
	assert.ErrorIs(t, p.Deactivate(), apperr.ErrConflict)
	assert.ErrorIs(t, p.UpdateStock(3), apperr.ErrConflict)
	require.Len(t, p.PendingEvents(), 1)
	assert.Equal(t, EventProductDeactivated, p.PendingEvents()[0].EventName())
}

func TestProduct_IsAvailable(t *testing.T) {
	p := newTestProduct(t, 5)

	assert.True(t, p.IsAvailable(5))
	assert.False(t, p.IsAvailable(6))
	assert.False(t, p.IsAvailable(0))
}
