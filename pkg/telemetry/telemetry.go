package telemetry

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// ZapTelemetry records checklist events as structured log lines. It satisfies
// the Telemetry interfaces of the checklist and commands packages.
type ZapTelemetry struct {
	logger *zap.Logger
	module string
}

// NewZapTelemetry wraps logger. A nil logger records nothing.
func NewZapTelemetry(logger *zap.Logger, module string) *ZapTelemetry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if module == "" {
		module = "checklist"
	}
	return &ZapTelemetry{logger: logger, module: module}
}

// Record logs the event at debug level, or at warn level for error events.
func (t *ZapTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	fields := make([]zap.Field, 0, len(payload)+1)
	fields = append(fields, zap.String("module", t.module))
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields = append(fields, zap.Any(key, payload[key]))
	}
	if _, failed := payload["error"]; failed {
		t.logger.Warn(event, fields...)
		return
	}
	t.logger.Debug(event, fields...)
}
