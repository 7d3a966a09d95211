package events

// EventCollector is embedded in aggregates to buffer events raised during state transitions.
type EventCollector struct {
	events []DomainEvent
}

// Record buffers an event.
func (c *EventCollector) Record(event DomainEvent) {
	c.events = append(c.events, event)
}

// Events returns the buffered events without clearing them.
func (c *EventCollector) Events() []DomainEvent {
	return c.events
}

// ClearEvents returns the buffered events and empties the buffer.
func (c *EventCollector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}

// Types lists the event types currently buffered, in order.
func (c *EventCollector) Types() []string {
	if len(c.events) == 0 {
		return nil
	}
	types := make([]string, len(c.events))
	for i, e := range c.events {
		types[i] = e.EventType()
	}
	return types
}
