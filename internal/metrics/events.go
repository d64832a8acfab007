package metrics

import (
	"context"

	"github.com/osse101/Dreadlight_Go/internal/event"
	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every inventory event
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllInventoryTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.ItemQuantityPayloadV1:
		switch evt.Type {
		case event.ItemAdded:
			ItemsAdded.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		case event.ItemRemoved:
			ItemsRemoved.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		}

	case event.ItemUsedPayloadV1:
		result := ResultFailure
		if p.Success {
			result = ResultSuccess
		}
		ItemsUsed.WithLabelValues(p.ItemID, result).Inc()

	case event.ItemEquipPayloadV1:
		switch evt.Type {
		case event.ItemEquipped:
			ItemsEquipped.WithLabelValues(p.ItemID).Inc()
		case event.ItemUnequipped:
			ItemsUnequipped.WithLabelValues(p.ItemID).Inc()
		}

	case event.InventoryUpdatedPayloadV1, event.ItemCooldownPayloadV1:
		// counted above

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// InstrumentBus wraps bus so publishes whose handlers fail are counted
func InstrumentBus(bus event.Bus) event.Bus {
	return instrumentedBus{Bus: bus}
}

type instrumentedBus struct {
	event.Bus
}

func (b instrumentedBus) Publish(ctx context.Context, evt event.Event) error {
	err := b.Bus.Publish(ctx, evt)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}
	return err
}
