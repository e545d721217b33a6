package estrutura

import (
	"context"
	"testing"
	"time"

	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/pagination"
	"github.com/DioGolang/GoSlices/pkg/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T, bus events.EventDispatcher) *mediator.Dispatcher {
	t.Helper()
	slices := database.NewMemorySlices(bus, logger.NewNop(), metrics.Nop{})
	reg := mediator.NewRegistry().Use(mediator.NewValidationBehavior(validation.New()))
	Register(reg, NewHandlers(slices.Estruturas))
	d, err := reg.Build(Requests()...)
	require.NoError(t, err)
	return d
}

func fields(name string, status int) Fields {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return Fields{
		Name:         name,
		TypeCode:     7,
		ExternalCode: "EXT-" + name,
		ValidFrom:    from,
		ValidUntil:   from.AddDate(1, 0, 0),
		Status:       status,
	}
}

func TestCreateEstrutura(t *testing.T) {
	//Arrange
	d := newDispatcher(t, nil)
	ctx := context.Background()

	//Act
	e, err := mediator.Send[EstruturaDTO](ctx, d, CreateEstrutura{Fields: fields("root", 1)})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 1, e.Version)
	got, err := mediator.Send[*EstruturaDTO](ctx, d, GetEstrutura{ID: e.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "EXT-root", got.ExternalCode)
}

func TestCreateEstrutura_Violations(t *testing.T) {
	bad := fields("", 3)
	bad.TypeCode = 0
	bad.ValidUntil = bad.ValidFrom

	d := newDispatcher(t, nil)
	_, err := mediator.Send[EstruturaDTO](context.Background(), d, CreateEstrutura{Fields: bad})

	require.ErrorIs(t, err, apperr.ErrValidation)
	var got []string
	for _, v := range apperr.ViolationsOf(err) {
		got = append(got, v.Field)
	}
	assert.ElementsMatch(t, []string{"name", "type_code", "valid_until", "status"}, got)
}

func TestUpdateEstrutura_BumpsVersion(t *testing.T) {
	d := newDispatcher(t, nil)
	ctx := context.Background()
	e, err := mediator.Send[EstruturaDTO](ctx, d, CreateEstrutura{Fields: fields("root", 1)})
	require.NoError(t, err)

	out, err := mediator.Send[EstruturaDTO](ctx, d, UpdateEstrutura{ID: e.ID, Fields: fields("renamed", 2)})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Version)
	assert.Equal(t, 2, out.Status)
	assert.NotNil(t, out.UpdatedAt)
}

func TestDeleteEstrutura(t *testing.T) {
	//Arrange
	bus := events.NewBus()
	var deleted []string
	require.NoError(t, bus.Register("estrutura.deleted", events.HandlerFunc{
		HandlerName: "collect",
		Fn: func(_ context.Context, evt events.Event) error {
			deleted = append(deleted, evt.AggregateID())
			return nil
		},
	}))
	d := newDispatcher(t, bus)
	ctx := context.Background()
	e, err := mediator.Send[EstruturaDTO](ctx, d, CreateEstrutura{Fields: fields("root", 1)})
	require.NoError(t, err)

	//Act
	first, err := mediator.Send[bool](ctx, d, DeleteEstrutura{ID: e.ID})
	require.NoError(t, err)
	second, err := mediator.Send[bool](ctx, d, DeleteEstrutura{ID: e.ID})
	require.NoError(t, err)

	//Assert
	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, []string{e.ID}, deleted)
	got, err := mediator.Send[*EstruturaDTO](ctx, d, GetEstrutura{ID: e.ID})
	require.NoError(t, err)
	assert.Nil(t, got)
	_, err = mediator.Send[EstruturaDTO](ctx, d, UpdateEstrutura{ID: e.ID, Fields: fields("x", 1)})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListEstruturas_ByStatus(t *testing.T) {
	d := newDispatcher(t, nil)
	ctx := context.Background()
	for i := range 7 {
		status := 1
		if i%3 == 0 {
			status = 2
		}
		_, err := mediator.Send[EstruturaDTO](ctx, d, CreateEstrutura{Fields: fields(uuid.NewString(), status)})
		require.NoError(t, err)
	}
	inactive := 2

	all, err := mediator.Send[pagination.Page[EstruturaDTO]](ctx, d, ListEstruturas{})
	require.NoError(t, err)
	filtered, err := mediator.Send[pagination.Page[EstruturaDTO]](ctx, d, ListEstruturas{Status: &inactive})
	require.NoError(t, err)

	assert.Equal(t, 7, all.TotalCount)
	assert.Equal(t, 3, filtered.TotalCount)
	for _, e := range filtered.Items {
		assert.Equal(t, 2, e.Status)
	}
}
