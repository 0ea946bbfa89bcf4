package events

import (
	"context"
	"log/slog"
)

// WarningSink receives operational warnings derived from the event
// stream. Implemented by the system warnings service; the indirection
// keeps this package free of service dependencies.
type WarningSink interface {
	ProviderCircuitOpened(model, detail string)
	ProviderRecovered(model string)
}

// WarningsCollector keeps the warning sink in sync with provider health:
// a circuit-open failure raises a warning for the model, the next
// completed request against that model clears it. Subscribe it to
// EventLLMRequestFailed and EventLLMRequestCompleted.
type WarningsCollector struct {
	sink   WarningSink
	logger *slog.Logger
}

// NewWarningsCollector creates the collector.
func NewWarningsCollector(sink WarningSink, logger *slog.Logger) *WarningsCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &WarningsCollector{
		sink:   sink,
		logger: logger.With("component", "warnings_collector"),
	}
}

// Name implements Handler.
func (w *WarningsCollector) Name() string { return "warnings_collector" }

// HandleEvent implements Handler.
func (w *WarningsCollector) HandleEvent(_ context.Context, evt Event) error {
	switch evt.Type {
	case EventLLMRequestFailed:
		p, ok := evt.Payload.(LLMRequestFailedPayload)
		if !ok || p.ErrorKind != "circuit_open" {
			return nil
		}
		w.logger.Warn("provider circuit open, raising system warning", "model", p.Model)
		w.sink.ProviderCircuitOpened(p.Model, p.Detail)

	case EventLLMRequestCompleted:
		if p, ok := evt.Payload.(LLMRequestCompletedPayload); ok {
			w.sink.ProviderRecovered(p.Model)
		}
	}
	return nil
}
