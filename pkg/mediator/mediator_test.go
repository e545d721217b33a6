package mediator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ Value string }
type pong struct{ Value string }

type echo struct{ Value int }

type named struct{}

func (named) RequestName() string { return "CustomName" }

func pingHandler(calls *int) HandlerFunc[ping, pong] {
	return func(ctx context.Context, req ping) (pong, error) {
		*calls++
		return pong{Value: "pong:" + req.Value}, nil
	}
}

func tracer(name string, trail *[]string) Behavior {
	return BehaviorFunc(func(ctx context.Context, req any, next Next) (any, error) {
		*trail = append(*trail, name+">")
		out, err := next(ctx)
		*trail = append(*trail, "<"+name)
		return out, err
	})
}

func TestSend_RoutesToTheRegisteredHandler(t *testing.T) {
	//Arrange
	var pings, echoes int
	reg := NewRegistry()
	Register[ping, pong](reg, pingHandler(&pings))
	Register[echo, int](reg, HandlerFunc[echo, int](func(ctx context.Context, req echo) (int, error) {
		echoes++
		return req.Value * 2, nil
	}))
	d, err := reg.Build(Expect[ping](), Expect[echo]())
	require.NoError(t, err)

	//Act
	res, err := Send[pong](context.Background(), d, ping{Value: "a"})
	doubled, err2 := Send[int](context.Background(), d, echo{Value: 21})

	//Assert
	assert.NoError(t, err)
	assert.NoError(t, err2)
	assert.Equal(t, "pong:a", res.Value)
	assert.Equal(t, 42, doubled)
	assert.Equal(t, 1, pings)
	assert.Equal(t, 1, echoes)
}

func TestSend_RoutesCorrectlyForEveryBehaviorOrder(t *testing.T) {
	orders := [][]string{
		{"a", "b", "c"}, {"a", "c", "b"}, {"b", "a", "c"},
		{"b", "c", "a"}, {"c", "a", "b"}, {"c", "b", "a"},
	}

	for _, order := range orders {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			var trail []string
			var pings, echoes int
			reg := NewRegistry()
			for _, name := range order {
				reg.Use(tracer(name, &trail))
			}
			Register[ping, pong](reg, pingHandler(&pings))
			Register[echo, int](reg, HandlerFunc[echo, int](func(ctx context.Context, req echo) (int, error) {
				echoes++
				return req.Value, nil
			}))
			d, err := reg.Build()
			require.NoError(t, err)

			res, err := Send[pong](context.Background(), d, ping{Value: "x"})

			require.NoError(t, err)
			assert.Equal(t, "pong:x", res.Value)
			assert.Equal(t, 1, pings)
			assert.Equal(t, 0, echoes)
			assert.Equal(t, []string{
				order[0] + ">", order[1] + ">", order[2] + ">",
				"<" + order[2], "<" + order[1], "<" + order[0],
			}, trail)
		})
	}
}

func TestBuild_DuplicateRegistrationIsAConfigurationError(t *testing.T) {
	var calls int
	reg := NewRegistry()
	Register[ping, pong](reg, pingHandler(&calls))
	Register[ping, pong](reg, pingHandler(&calls))

	d, err := reg.Build()

	assert.Nil(t, d)
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
	assert.Contains(t, err.Error(), "duplicate handler for ping")
}

func TestBuild_MissingExpectedHandlerIsAConfigurationError(t *testing.T) {
	var calls int
	reg := NewRegistry()
	Register[ping, pong](reg, pingHandler(&calls))

	_, err := reg.Build(Expect[ping](), Expect[echo]())

	assert.ErrorIs(t, err, apperr.ErrConfiguration)
	assert.Contains(t, err.Error(), "no handler registered for echo")
}

func TestSend_UnregisteredRequestIsAConfigurationError(t *testing.T) {
	d, err := NewRegistry().Build()
	require.NoError(t, err)

	_, err = Send[int](context.Background(), d, echo{Value: 1})

	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
	assert.False(t, d.Has(echo{}))
}

func TestSend_WrongResponseTypeIsAConfigurationError(t *testing.T) {
	var calls int
	reg := NewRegistry()
	Register[ping, pong](reg, pingHandler(&calls))
	d, err := reg.Build()
	require.NoError(t, err)

	_, err = Send[string](context.Background(), d, ping{})

	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
	assert.Equal(t, 0, calls)
}

func TestSend_CancelledContextNeverReachesHandler(t *testing.T) {
	var calls int
	var trail []string
	reg := NewRegistry().Use(tracer("outer", &trail))
	Register[ping, pong](reg, pingHandler(&calls))
	d, err := reg.Build()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Send[pong](ctx, d, ping{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
	assert.Empty(t, trail)
}

func TestSend_CancellationObservedMidChainStopsTheChain(t *testing.T) {
	var calls int
	ctx, cancel := context.WithCancel(context.Background())
	reg := NewRegistry().Use(BehaviorFunc(func(ctx context.Context, req any, next Next) (any, error) {
		cancel()
		return next(ctx)
	}))
	Register[ping, pong](reg, pingHandler(&calls))
	d, err := reg.Build()
	require.NoError(t, err)

	_, err = Send[pong](ctx, d, ping{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestSend_HandlerErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	Register[echo, int](reg, HandlerFunc[echo, int](func(ctx context.Context, req echo) (int, error) {
		return 0, boom
	}))
	d, err := reg.Build()
	require.NoError(t, err)

	_, err = Send[int](context.Background(), d, echo{})

	assert.Same(t, boom, err)
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "ping", NameOf(ping{}))
	assert.Equal(t, "ping", NameOf(&ping{}))
	assert.Equal(t, "CustomName", NameOf(named{}))
}

func TestSend_RoutesRequestsHeldInAnInterface(t *testing.T) {
	//Arrange
	var calls int
	reg := NewRegistry()
	Register[ping, pong](reg, pingHandler(&calls))
	Register[*echo, int](reg, HandlerFunc[*echo, int](func(ctx context.Context, req *echo) (int, error) {
		return req.Value * 2, nil
	}))
	d, err := reg.Build()
	require.NoError(t, err)

	var req any = ping{Value: "boxed"}
	var ptr any = &echo{Value: 21}
	var missing any = echo{Value: 1}

	//Act
	res, err := Send[pong](context.Background(), d, req)
	doubled, ptrErr := Send[int](context.Background(), d, ptr)
	_, missingErr := Send[int](context.Background(), d, missing)
	_, nilErr := Send[int](context.Background(), d, any(nil))

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:boxed", res.Value)
	assert.Equal(t, 1, calls)
	require.NoError(t, ptrErr)
	assert.Equal(t, 42, doubled)
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(missingErr))
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(nilErr))
}

func TestBuild_DuplicatePointerRegistrationNamesTheType(t *testing.T) {
	reg := NewRegistry()
	h := HandlerFunc[*echo, int](func(ctx context.Context, req *echo) (int, error) { return 0, nil })
	Register[*echo, int](reg, h)
	Register[*echo, int](reg, h)

	_, err := reg.Build()

	assert.ErrorIs(t, err, apperr.ErrConfiguration)
	assert.Contains(t, err.Error(), "duplicate handler for echo")
}
