package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler executes one command. The payload is the raw JSON argument object
// from the UI client; the returned value is marshaled back to it.
type Handler func(ctx context.Context, payload json.RawMessage) (interface{}, error)

// Registry is the fixed table mapping command names to handlers. It is built
// once at startup and never mutated afterwards, so Invoke needs no locking;
// overlapping invocations run concurrently as independent units of work.
type Registry struct {
	logger   *zap.SugaredLogger
	handlers map[string]Handler
}

// NewRegistry creates an empty command registry.
func NewRegistry(logger *zap.SugaredLogger) *Registry {
	return &Registry{
		logger:   logger,
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under name. Registering the same name twice is a
// wiring bug and fails so bootstrap can abort instead of silently aliasing
// one command with another.
func (r *Registry) Register(name string, handler Handler) error {
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("command %q registered twice", name)
	}
	r.handlers[name] = handler
	return nil
}

// Invoke dispatches a single command. All failures come back as an error
// whose message is safe to show to the UI client; Invoke never panics the
// process on a failed command.
func (r *Registry) Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}

	reqID := uuid.NewString()[:8]
	r.logger.Debugw("Command invoked", "command", name, "request_id", reqID)

	result, err := handler(ctx, payload)
	if err != nil {
		r.logger.Warnw("Command failed", "command", name, "request_id", reqID, "error", err)
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Errorw("Command result not serializable", "command", name, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("failed to encode %s result: %w", name, err)
	}

	r.logger.Debugw("Command completed", "command", name, "request_id", reqID)
	return data, nil
}

// Commands returns the registered command names in sorted order.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
