// Package events carries the process-wide event bus and its subscribers. The
// bus dispatches synchronously in subscription order; reference integrity is
// enforced by per-entity subscribers reacting to dependency events.
package events

import (
	"time"

	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mlog"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Kind names one event of the closed event set.
type Kind string

const (
	AddReference       Kind = "add_reference"
	ChangeReference    Kind = "change_reference"
	RemoveReference    Kind = "remove_reference"
	UpdateDependencies Kind = "update_dependencies"
	CheckDependencies  Kind = "check_dependencies"
	ChangeBlockPeriod  Kind = "change_block_period"
	LogDebug           Kind = "debug"
	LogInfo            Kind = "info"
	LogWarning         Kind = "warning"
	LogError           Kind = "error"
)

var knownKinds = map[Kind]bool{
	AddReference:       true,
	ChangeReference:    true,
	RemoveReference:    true,
	UpdateDependencies: true,
	CheckDependencies:  true,
	ChangeBlockPeriod:  true,
	LogDebug:           true,
	LogInfo:            true,
	LogWarning:         true,
	LogError:           true,
}

// IsLog reports whether the kind is one of the four log levels.
func IsLog(kind Kind) bool {
	return kind == LogDebug || kind == LogInfo || kind == LogWarning || kind == LogError
}

// UpdateDependenciesPayload accompanies UpdateDependencies: every holder of a
// reference to Old rewrites it to New.
type UpdateDependenciesPayload struct {
	Old mmodel.Entity
	New mmodel.Entity
}

// CheckDependenciesPayload accompanies CheckDependencies: any subscriber still
// referencing Target vetoes the deletion by failing.
type CheckDependenciesPayload struct {
	Target mmodel.Entity
}

// ReferencePayload accompanies the add/change/remove notifications.
type ReferencePayload struct {
	Entity mmodel.Entity
}

// BlockPeriodPayload accompanies ChangeBlockPeriod.
type BlockPeriodPayload struct {
	Cutoff time.Time
}

// LogPayload accompanies the four log kinds.
type LogPayload struct {
	Message string
}

// Subscriber handles events dispatched by the bus. Key identifies the
// subscriber for idempotent subscription and for unsubscription.
type Subscriber interface {
	Key() string
	Handle(kind Kind, payload any) error
}

// Bus is the process-wide subscriber registry. Not safe for concurrent use;
// requests are serialized by the caller.
type Bus struct {
	subs   []Subscriber
	logger mlog.Logger
}

// NewBus creates a bus. The logger only records subscriber failures swallowed
// on log-kind events.
func NewBus(logger mlog.Logger) *Bus {
	if logger == nil {
		logger = &mlog.NoneLogger{}
	}

	return &Bus{
		logger: logger,
	}
}

// Subscribe registers a subscriber. Subscribing the same key twice is a no-op.
func (b *Bus) Subscribe(s Subscriber) {
	for _, held := range b.subs {
		if held.Key() == s.Key() {
			return
		}
	}

	b.subs = append(b.subs, s)
}

// Unsubscribe removes the subscriber with the same key, if present.
func (b *Bus) Unsubscribe(s Subscriber) {
	for i, held := range b.subs {
		if held.Key() == s.Key() {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Fire dispatches the event synchronously in subscription order. The first
// subscriber error aborts dispatch and propagates, except on log kinds where
// subscriber errors are recorded and swallowed. An unknown kind is a
// programming error.
func (b *Bus) Fire(kind Kind, payload any) error {
	if !knownKinds[kind] {
		return pkg.ValidateBusinessError(cn.ErrUnknownEventKind, "Event", string(kind))
	}

	for _, s := range b.subs {
		if err := s.Handle(kind, payload); err != nil {
			if IsLog(kind) {
				b.logger.Warnf("subscriber %s failed on %s event: %v", s.Key(), kind, err)
				continue
			}

			return err
		}
	}

	return nil
}

// Log fires a log event, ignoring the (always nil) dispatch error.
func (b *Bus) Log(kind Kind, message string) {
	if IsLog(kind) {
		_ = b.Fire(kind, LogPayload{Message: message})
	}
}
