package notification

import (
	"context"
	"testing"
	"time"

	"github.com/DioGolang/GoSlices/internal/domain/entity"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotifier_LogsAndCountsEveryRegisteredEvent(t *testing.T) {
	//Arrange
	core, logs := observer.New(zapcore.InfoLevel)
	reg := prometheus.NewRegistry()
	bus := events.NewBus()
	n := NewNotifier(logger.NewFromZap(zap.New(core)), metrics.NewPrometheusMetrics(reg, "test"))
	require.NoError(t, n.Register(bus))

	evt := entity.ProductStockChanged{
		Header:        events.NewHeader(entity.EventProductStockChanged, "p-1", time.Now()),
		ProductID:     "p-1",
		PreviousStock: 3,
		NewStock:      9,
	}

	//Act
	err := bus.Dispatch(context.Background(), evt)

	//Assert
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, entity.EventProductStockChanged, fields["event"])
	assert.Equal(t, int64(9), fields["new_stock"])
	count, err := testutil.GatherAndCount(reg, "app_notifications_delivered_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifier_RegistersOncePerEvent(t *testing.T) {
	bus := events.NewBus()
	n := NewNotifier(logger.NewNop(), metrics.Nop{})

	require.NoError(t, n.Register(bus))
	err := n.Register(bus)

	assert.ErrorIs(t, err, events.ErrHandlerAlreadyRegistered)
	for _, name := range EventNames {
		assert.True(t, bus.Has(name, n))
	}
}

func TestNotifier_HandlesBrokerEnvelopes(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := NewNotifier(logger.NewFromZap(zap.New(core)), metrics.Nop{})
	env := events.Envelope{Header: events.NewHeader(entity.EventEstruturaDeleted, "e-1", time.Now())}

	require.NoError(t, n.Handle(context.Background(), env))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "e-1", logs.All()[0].ContextMap()["aggregate_id"])
}
