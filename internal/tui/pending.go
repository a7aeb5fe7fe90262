package tui

import (
	"sync"
	"time"

	"github.com/angristan/frostlux/internal/models"
)

const pendingOpExpiry = 5 * time.Second

// Direction represents the direction of a change
type Direction int

const (
	DirExact Direction = iota // Exact match required (power, color)
	DirUp                     // Value is increasing
	DirDown                   // Value is decreasing
)

// Field names a light property a command changes
type Field string

const (
	FieldOn         Field = "on"
	FieldBrightness Field = "brightness"
	FieldColor      Field = "color"
)

// PendingOp represents a command whose effect a refresh may not show yet
type PendingOp struct {
	Target    any // bool for on, int for brightness, string for color
	Direction Direction
	ExpiresAt time.Time
}

type pendingKey struct {
	lightID uint64
	field   Field
}

// PendingTracker keeps optimistic local edits from being overwritten by a
// refresh snapshot taken before the command reached the gateway.
type PendingTracker struct {
	ops map[pendingKey]*PendingOp
	now func() time.Time
	mu  sync.Mutex
}

// NewPendingTracker creates a new pending operations tracker
func NewPendingTracker() *PendingTracker {
	return &PendingTracker{
		ops: make(map[pendingKey]*PendingOp),
		now: time.Now,
	}
}

// Add registers an exact-match pending operation
func (t *PendingTracker) Add(lightID uint64, field Field, value any) {
	t.AddWithDirection(lightID, field, value, DirExact)
}

// AddWithDirection registers a pending operation moving toward target.
// A later operation on the same field replaces the earlier one.
func (t *PendingTracker) AddWithDirection(lightID uint64, field Field, target any, dir Direction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ops[pendingKey{lightID, field}] = &PendingOp{
		Target:    target,
		Direction: dir,
		ExpiresAt: t.now().Add(pendingOpExpiry),
	}
}

// ShouldIgnore reports whether a refreshed value should be replaced by the
// local one. Exact operations hide every value until the target is seen.
// Directional operations hide values that are still on the way to the
// target and give up once the value overshoots it.
func (t *PendingTracker) ShouldIgnore(lightID uint64, field Field, value any) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := pendingKey{lightID, field}
	op, exists := t.ops[key]
	if !exists {
		return false
	}

	if t.now().After(op.ExpiresAt) {
		delete(t.ops, key)
		return false
	}

	switch op.Direction {
	case DirUp:
		cmp := compareValues(value, op.Target)
		if cmp <= 0 {
			if cmp == 0 {
				delete(t.ops, key)
			}
			return true
		}
		// Brighter than requested, changed elsewhere
		delete(t.ops, key)
		return false

	case DirDown:
		cmp := compareValues(value, op.Target)
		if cmp >= 0 {
			if cmp == 0 {
				delete(t.ops, key)
			}
			return true
		}
		delete(t.ops, key)
		return false

	default:
		if valuesEqual(op.Target, value) {
			delete(t.ops, key)
		}
		return true
	}
}

// Cleanup removes expired pending operations
func (t *PendingTracker) Cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for key, op := range t.ops {
		if now.After(op.ExpiresAt) {
			delete(t.ops, key)
		}
	}
}

// Len returns the number of operations still pending
func (t *PendingTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ops)
}

// Reconcile merges a fresh snapshot with the lights currently shown.
// Fields with a pending operation keep their local value.
func (t *PendingTracker) Reconcile(local, fresh []*models.Light) []*models.Light {
	byID := make(map[uint64]*models.Light, len(local))
	for _, l := range local {
		byID[l.ID] = l
	}

	merged := make([]*models.Light, 0, len(fresh))
	for _, f := range fresh {
		l := f.Clone()
		if old, ok := byID[f.ID]; ok {
			if t.ShouldIgnore(f.ID, FieldOn, f.On) {
				l.On = old.On
			}
			if t.ShouldIgnore(f.ID, FieldBrightness, int(f.Brightness)) {
				l.Brightness = old.Brightness
			}
			if t.ShouldIgnore(f.ID, FieldColor, f.Color) {
				l.Color = old.Color
			}
		}
		merged = append(merged, l)
	}
	return merged
}

// compareValues compares two numeric values
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func compareValues(a, b any) int {
	af, bf := toInt(a), toInt(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}

func toInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case uint8:
		return int(val)
	case uint16:
		return int(val)
	case int64:
		return int(val)
	}
	return 0
}

// valuesEqual compares two values for equality (exact match)
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	default:
		return compareValues(a, b) == 0
	}
}
