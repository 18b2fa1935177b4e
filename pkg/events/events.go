// Package events publishes resource state changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// Event is the payload published for one state change.
type Event struct {
	Resource string         `json:"resource"`
	UUID     string         `json:"uuid"`
	Change   string         `json:"change"`
	Data     map[string]any `json:"data,omitempty"`
	Time     time.Time      `json:"time"`
}

// Subject returns redfish.<resource>.<uuid>.<change>.
func (e Event) Subject() string {
	return fmt.Sprintf("redfish.%s.%s.%s", e.Resource, e.UUID, e.Change)
}

// Publisher -.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

// Noop drops every event.
type Noop struct{}

// Publish -.
func (Noop) Publish(context.Context, Event) error { return nil }

// Close -.
func (Noop) Close() {}

// NATS publishes events as JSON on a NATS connection.
type NATS struct {
	nc *nats.Conn
}

// NewNATS connects to url, reconnecting forever.
func NewNATS(url string, l logger.Interface) (*NATS, error) {
	opts := []nats.Option{
		nats.Name("bmc-emulator"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				l.Warn("events - nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			l.Info("events - nats reconnected to %s", nc.ConnectedUrl())
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("events - nats connect %s: %w", url, err)
	}

	return &NATS{nc: nc}, nil
}

// Publish -.
func (p *NATS) Publish(_ context.Context, e Event) error {
	if p.nc == nil || p.nc.IsClosed() {
		return fmt.Errorf("events - nats not connected")
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return p.nc.Publish(e.Subject(), payload)
}

// Close drains pending messages.
func (p *NATS) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Publish -.
func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)

	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Close -.
func (r *Recorder) Close() {}
