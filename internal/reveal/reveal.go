// Package reveal flips an element to visible the first time it enters the
// viewport, then stops observing it.
package reveal

import (
	"fmt"
	"html/template"
	"strconv"
)

// DefaultThreshold is the visible fraction that counts as entering the viewport.
const DefaultThreshold = 0.15

// Entry is one intersection notification for a target.
type Entry struct {
	Target       string
	Intersecting bool
	Ratio        float64
}

// Notifier is the viewport intersection capability. Callbacks for one target
// are delivered serially on the notifier's event loop.
type Notifier interface {
	Register(target string, thresholds []float64, fn func(Entry))
	Unregister(target string)
}

// Reveal is attached to one element. It is not safe for concurrent use.
type Reveal struct {
	notifier  Notifier
	target    string
	threshold float64
	visible   bool
	observing bool
}

// Option configures Attach.
type Option func(*Reveal)

// WithThreshold overrides DefaultThreshold. Values outside (0, 1] are ignored.
func WithThreshold(v float64) Option {
	return func(r *Reveal) {
		if v > 0 && v <= 1 {
			r.threshold = v
		}
	}
}

// Attach starts observing target.
func Attach(n Notifier, target string, opts ...Option) *Reveal {
	r := &Reveal{notifier: n, target: target, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(r)
	}
	r.observing = true
	n.Register(target, []float64{r.threshold}, r.handle)
	return r
}

func (r *Reveal) handle(e Entry) {
	if !r.observing || r.visible || !e.Intersecting {
		return
	}
	r.visible = true
	r.stop()
}

// Visible reports whether the element has been revealed. Once true it stays true.
func (r *Reveal) Visible() bool { return r.visible }

// Observing reports whether the notifier still watches the element.
func (r *Reveal) Observing() bool { return r.observing }

// Threshold returns the configured threshold.
func (r *Reveal) Threshold() float64 { return r.threshold }

// Detach cancels observation. It is a no-op after the element was revealed.
func (r *Reveal) Detach() { r.stop() }

func (r *Reveal) stop() {
	if !r.observing {
		return
	}
	r.observing = false
	r.notifier.Unregister(r.target)
}

// Attrs renders the attributes the browser script attaches to. A threshold
// outside (0, 1] falls back to DefaultThreshold.
func Attrs(threshold float64) template.HTMLAttr {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	v := strconv.FormatFloat(threshold, 'f', -1, 64)
	return template.HTMLAttr(fmt.Sprintf(`data-reveal data-reveal-threshold="%s"`, v))
}
