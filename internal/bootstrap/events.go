package bootstrap

import (
	"fmt"

	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/metrics"
)

// InitializeEventSystem creates the in-memory event bus, wraps it so
// failing handlers are counted, and subscribes the metrics collector
func InitializeEventSystem() (event.Bus, error) {
	bus := metrics.InstrumentBus(event.NewMemoryBus())

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	logger.Info(LogMsgEventSystemInitialized)
	return bus, nil
}
