package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DeliveryHandler receives deliveries from a LocalPort when an entry fires.
type DeliveryHandler func(Delivery)

// LocalPort is an in-process Port implementation. Recurring triggers are
// backed by a cron runner, single-fire triggers by timers. It stands in for
// a platform notification system when the engine runs as a plain process.
type LocalPort struct {
	handler DeliveryHandler
	cron    *cron.Cron

	mu     sync.Mutex
	crons  map[string]cron.EntryID
	timers map[string]*time.Timer
}

// NewLocalPort creates a started LocalPort that invokes handler whenever a
// registered entry fires.
func NewLocalPort(handler DeliveryHandler) *LocalPort {
	p := &LocalPort{
		handler: handler,
		cron:    cron.New(),
		crons:   make(map[string]cron.EntryID),
		timers:  make(map[string]*time.Timer),
	}
	p.cron.Start()
	return p
}

// Register schedules an entry. An existing entry under the same identifier
// is replaced.
func (p *LocalPort) Register(id EntryID, content Content, trigger Trigger) error {
	key := id.String()
	delivery := Delivery{Identifier: key, Metadata: content.Metadata}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked(key)

	if trigger.Kind == TriggerOnce {
		p.timers[key] = time.AfterFunc(time.Until(trigger.At), func() {
			p.mu.Lock()
			delete(p.timers, key)
			p.mu.Unlock()
			p.handler(delivery)
		})
		return nil
	}

	spec, err := cronSpec(trigger)
	if err != nil {
		return err
	}
	entryID, err := p.cron.AddFunc(spec, func() {
		p.handler(delivery)
	})
	if err != nil {
		return fmt.Errorf("scheduling %s: %w", key, err)
	}
	p.crons[key] = entryID
	return nil
}

// Cancel removes the entries with the given identifiers. Unknown
// identifiers are ignored.
func (p *LocalPort) Cancel(identifiers []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, key := range identifiers {
		p.cancelLocked(key)
	}
	return nil
}

// Registered reports whether an entry is currently scheduled under the
// given identifier.
func (p *LocalPort) Registered(identifier string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.crons[identifier]; ok {
		return true
	}
	_, ok := p.timers[identifier]
	return ok
}

// Close stops the cron runner and all pending timers.
func (p *LocalPort) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key := range p.crons {
		p.cancelLocked(key)
	}
	for key := range p.timers {
		p.cancelLocked(key)
	}
	p.cron.Stop()
}

func (p *LocalPort) cancelLocked(key string) {
	if entryID, ok := p.crons[key]; ok {
		p.cron.Remove(entryID)
		delete(p.crons, key)
	}
	if timer, ok := p.timers[key]; ok {
		timer.Stop()
		delete(p.timers, key)
	}
}

// cronSpec converts a recurring trigger into a standard 5-field cron
// expression.
func cronSpec(trigger Trigger) (string, error) {
	switch trigger.Kind {
	case TriggerWeekly:
		return fmt.Sprintf("%d %d * * %d",
			trigger.Minute, trigger.Hour, int(trigger.Weekday)), nil
	case TriggerMonthly:
		return fmt.Sprintf("%d %d %d * *",
			trigger.Minute, trigger.Hour, trigger.Day), nil
	default:
		return "", fmt.Errorf("trigger kind %d has no cron form", trigger.Kind)
	}
}
