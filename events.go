package galex

import "sync"

// EventKind enumerates the population lifecycle notifications a host
// workflow can subscribe to, the direct generalization of
// original_source's GaPopulationEvents enum. This engine has no logging
// layer of its own (see SPEC_FULL.md's ambient stack notes); events are the
// surface a hosting application uses to drive its own logging or metrics.
type EventKind int

const (
	// NewGeneration fires once NextGeneration has finished installing the
	// replacement members.
	NewGeneration EventKind = iota

	// PopulationParametersChanged fires when size/crowding/fill options are
	// updated on a live population.
	PopulationParametersChanged

	// FitnessOperationChanged fires when the population's FitnessOp is
	// swapped.
	FitnessOperationChanged

	// FitnessComparatorChanged fires when the raw or scaled Comparator is
	// swapped.
	FitnessComparatorChanged

	// ScaledFitnessPrototypeChanged fires when the scaled-fitness
	// prototype is swapped.
	ScaledFitnessPrototypeChanged
)

// Event is the payload delivered to subscribers. Population is always the
// population that raised it; Branch is the branch index the raising
// operation ran on, or -1 for population-wide changes issued outside a
// branch-synchronized pass.
type Event struct {
	Kind       EventKind
	Population *Population
	Branch     int
}

// EventHandler receives events a population raises. Handlers run
// synchronously, in subscription order, on the goroutine that raised the
// event; a handler must not block or call back into the population that
// invoked it without risking deadlock, matching how original_source's
// event hooks were documented to run inline.
type EventHandler func(Event)

// EventBus is a minimal typed pub/sub used by Population to raise
// lifecycle notifications.
type EventBus struct {
	mu       sync.Mutex
	handlers map[EventKind][]EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventKind][]EventHandler)}
}

// Subscribe registers fn to run whenever an event of kind is raised.
func (b *EventBus) Subscribe(kind EventKind, fn EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], fn)
}

// Raise invokes every handler subscribed to evt.Kind, in subscription
// order.
func (b *EventBus) Raise(evt Event) {
	b.mu.Lock()
	handlers := append([]EventHandler(nil), b.handlers[evt.Kind]...)
	b.mu.Unlock()
	for _, h := range handlers {
		h(evt)
	}
}
