package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/DioGolang/GoSlices/pkg/events"
)

// DispatchToBus decodes the broker envelope and hands it to the in-process bus of
// the consuming process.
func DispatchToBus(bus events.EventDispatcher) MessageHandler {
	return func(ctx context.Context, msg []byte, _ map[string]any) error {
		env, err := events.Decode(msg)
		if err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		if env.Name == "" {
			return errors.New("event without name")
		}
		return bus.Dispatch(ctx, env)
	}
}
