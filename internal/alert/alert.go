// Package alert delivers best-effort push alerts for threshold crossings.
//
// Delivery is a side channel: failures are logged and swallowed, they never
// surface to the caller.
package alert

// Sink is a delivery channel for alerts.
type Sink interface {
	// Permitted reports whether the sink is configured and allowed to
	// deliver alerts.
	Permitted() bool

	// Fire delivers an alert. The tag identifies the alert source so
	// that clients can collapse repeats. Implementations must not block
	// on delivery problems and must not return errors.
	Fire(title, body, tag string)
}

// Nop is a Sink that never delivers anything.
type Nop struct{}

func (Nop) Permitted() bool     { return false }
func (Nop) Fire(_, _, _ string) {}
