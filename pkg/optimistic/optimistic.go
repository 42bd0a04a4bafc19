// Package optimistic implements the client side of a predicted mutation:
// state is shown to the user immediately from a pure reducer while the real
// mutation is in flight, then confirmed or rolled back once the server
// responds.
package optimistic

// Holder keeps two slots for a piece of client state: the last
// server-confirmed value and the current prediction. Between Predict and
// Confirm/Rollback the two may differ; the UI always renders State().
//
// Holder is not safe for concurrent use. Callers serialize access, the same
// way a UI event loop does.
type Holder[S any] struct {
	confirmed S
	predicted S
	pending   int
}

func NewHolder[S any](initial S) *Holder[S] {
	return &Holder[S]{
		confirmed: initial,
		predicted: initial,
	}
}

// Predict applies the reducer to the latest predicted state, not the
// confirmed snapshot, so rapid back-to-back predictions compose instead of
// clobbering each other.
func (h *Holder[S]) Predict(reduce func(S) S) S {
	h.predicted = reduce(h.predicted)
	h.pending++
	return h.predicted
}

// Confirm accepts server truth: both slots take the authoritative state and
// outstanding predictions are settled.
func (h *Holder[S]) Confirm(state S) {
	h.confirmed = state
	h.predicted = state
	h.pending = 0
}

// Rollback discards every outstanding prediction and reverts to the last
// confirmed state.
func (h *Holder[S]) Rollback() S {
	h.predicted = h.confirmed
	h.pending = 0
	return h.predicted
}

// State returns the value to render: the prediction while one is
// outstanding, the confirmed value otherwise.
func (h *Holder[S]) State() S {
	return h.predicted
}

// Confirmed returns the last server-confirmed value.
func (h *Holder[S]) Confirmed() S {
	return h.confirmed
}

// Dirty reports whether a prediction is outstanding.
func (h *Holder[S]) Dirty() bool {
	return h.pending > 0
}
