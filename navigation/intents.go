package navigation

import "sync"

// Route names mirror the destinations of the mobile client.
const (
	RouteOnboarding    = "Onboarding"
	RouteHome          = "Home"
	RouteProfile       = "Profile"
	RouteProductDetail = "ProductDetail"
	RouteCheckout      = "Checkout"
	RouteBack          = "Back"
)

// Intent is a fire-once navigation trigger emitted by a state transition.
// The core never holds navigation state, it only announces where the
// client should go next.
type Intent struct {
	Route  string `json:"route"`
	ItemID uint   `json:"item_id,omitempty"`
}

func ToHome() Intent       { return Intent{Route: RouteHome} }
func ToOnboarding() Intent { return Intent{Route: RouteOnboarding} }
func ToCheckout() Intent   { return Intent{Route: RouteCheckout} }
func Back() Intent         { return Intent{Route: RouteBack} }

func ToProductDetail(id uint) Intent {
	return Intent{Route: RouteProductDetail, ItemID: id}
}

// Dispatcher fans an intent out to every registered listener. A nil
// dispatcher is valid and drops all intents, so components can run without
// navigation wired up (tests, background jobs).
type Dispatcher struct {
	mu        sync.Mutex
	listeners []func(Intent)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(fn func(Intent)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

func (d *Dispatcher) Emit(intent Intent) {
	if d == nil {
		return
	}

	d.mu.Lock()
	listeners := make([]func(Intent), len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	// Listeners run outside the lock so one may Subscribe or Emit again.
	for _, fn := range listeners {
		fn(intent)
	}
}
