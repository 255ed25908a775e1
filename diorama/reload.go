package diorama

import "log/slog"

// Reloader hands rebuilt options from a watcher goroutine to a render loop.
// Only the latest request is kept.
type Reloader struct {
	ch chan Options
}

func NewReloader() *Reloader {
	return &Reloader{ch: make(chan Options, 1)}
}

// Request queues opts, replacing any request not yet picked up.
func (r *Reloader) Request(opts Options) {
	for {
		select {
		case r.ch <- opts:
			return
		default:
		}
		select {
		case <-r.ch:
		default:
		}
	}
}

// Next returns d rebuilt with the pending options, or d itself when nothing
// is pending or the options do not build.
func (r *Reloader) Next(d *Diorama) *Diorama {
	select {
	case opts := <-r.ch:
		nd, err := Build(opts)
		if err != nil {
			slog.Warn("keeping previous diorama", "err", err)
			return d
		}
		slog.Info("diorama rebuilt", "beams", len(nd.Lattice.Beams))
		return nd
	default:
		return d
	}
}
