package order

import "fmt"

// ItemState is the fulfilment state of one order item.
// pending -> farmer_shipped -> prepared -> delivered, one step at a time.
type ItemState string

const (
	StatePending       ItemState = "pending"
	StateFarmerShipped ItemState = "farmer_shipped"
	StatePrepared      ItemState = "prepared"
	StateDelivered     ItemState = "delivered"
)

var transitions = map[ItemState]ItemState{
	StatePending:       StateFarmerShipped,
	StateFarmerShipped: StatePrepared,
	StatePrepared:      StateDelivered,
}

var stateOrder = []ItemState{StatePending, StateFarmerShipped, StatePrepared, StateDelivered}

// distinctStates returns the states present in states, in fulfilment order.
func distinctStates(states []ItemState) []ItemState {
	seen := make(map[ItemState]bool, len(states))
	for _, st := range states {
		seen[st] = true
	}
	out := make([]ItemState, 0, len(seen))
	for _, st := range stateOrder {
		if seen[st] {
			out = append(out, st)
		}
	}
	return out
}

func ParseState(s string) (ItemState, error) {
	switch st := ItemState(s); st {
	case StatePending, StateFarmerShipped, StatePrepared, StateDelivered:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
}

// Next returns the only state s may move to.
func (s ItemState) Next() (ItemState, bool) {
	n, ok := transitions[s]
	return n, ok
}

// Predecessor returns the state an item must be in to move to s.
func (s ItemState) Predecessor() (ItemState, bool) {
	for from := range transitions {
		if CanTransition(from, s) {
			return from, true
		}
	}
	return "", false
}

func CanTransition(from, to ItemState) bool {
	n, ok := from.Next()
	return ok && n == to
}
