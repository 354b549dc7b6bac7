// Package workflow holds the pure list derivations behind every screen:
// active/history partitioning, date ordering, the combined calendar merge,
// and the list search filter. Nothing here performs I/O or keeps state;
// each call receives its full input and returns a new derived result.
package workflow

import (
	"slices"
	"strings"
	"time"

	"go-glassfloor-ws/internal/model"
)

// Trackable is any entity with a lifecycle status from a catalog.
type Trackable interface {
	Kind() model.EntityKind
	CurrentStatus() string
}

// Sortable is any entity that can be placed on a timeline. EffectiveAt
// reports false when the date is absent or unparseable; such records sort
// deterministically last instead of wherever a NaN comparison drops them.
type Sortable interface {
	EffectiveAt() (time.Time, bool)
	HistoryAt() (time.Time, bool)
}

// Partition splits entities into the active and history buckets in a single
// pass, preserving relative order within each bucket. An entity is history
// exactly when its current status is terminal for its kind; the split is
// computed from the status field on every call, never stored. The two
// buckets always cover the input exactly.
func Partition[T Trackable](entities []T) (active, history []T) {
	active = make([]T, 0, len(entities))
	history = make([]T, 0)
	for _, e := range entities {
		if model.IsTerminal(e.Kind(), e.CurrentStatus()) {
			history = append(history, e)
		} else {
			active = append(active, e)
		}
	}
	return active, history
}

// SortActive orders entities by effective date ascending, soonest first.
// Entities without a usable date sort last, keeping their relative order.
// The input slice is not modified.
func SortActive[T Sortable](entities []T) []T {
	sorted := slices.Clone(entities)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareAt(a.EffectiveAt, b.EffectiveAt, false)
	})
	return sorted
}

// SortHistory orders entities by creation/completion date descending, most
// recent first. Entities without a usable date sort last. The input slice is
// not modified.
func SortHistory[T Sortable](entities []T) []T {
	sorted := slices.Clone(entities)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareAt(a.HistoryAt, b.HistoryAt, true)
	})
	return sorted
}

// compareAt orders two optional instants. Records without an instant always
// compare after records with one, regardless of direction.
func compareAt(a, b func() (time.Time, bool), descending bool) int {
	at, aok := a()
	bt, bok := b()
	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case !aok && !bok:
		return 0
	}
	if descending {
		return bt.Compare(at)
	}
	return at.Compare(bt)
}

// CalendarItem is one entry of the combined events view, tagged with the
// kind it originated from. Exactly one of Event and WorkOrder is set.
type CalendarItem struct {
	Kind      model.EntityKind `json:"kind"`
	Event     *model.Event     `json:"event,omitempty"`
	WorkOrder *model.WorkOrder `json:"work_order,omitempty"`
}

// EffectiveAt delegates to whichever entity the item wraps.
func (c CalendarItem) EffectiveAt() (time.Time, bool) {
	if c.Event != nil {
		return c.Event.EffectiveAt()
	}
	if c.WorkOrder != nil {
		return c.WorkOrder.EffectiveAt()
	}
	return time.Time{}, false
}

func (c CalendarItem) HistoryAt() (time.Time, bool) {
	if c.Event != nil {
		return c.Event.HistoryAt()
	}
	if c.WorkOrder != nil {
		return c.WorkOrder.HistoryAt()
	}
	return time.Time{}, false
}

// MergeSchedule combines events and work orders into one calendar list,
// ordered ascending by each item's own effective-date rule.
func MergeSchedule(events []model.Event, orders []model.WorkOrder) []CalendarItem {
	merged := make([]CalendarItem, 0, len(events)+len(orders))
	for i := range events {
		merged = append(merged, CalendarItem{Kind: model.KindEvent, Event: &events[i]})
	}
	for i := range orders {
		merged = append(merged, CalendarItem{Kind: model.KindWorkOrder, WorkOrder: &orders[i]})
	}
	return SortActive(merged)
}

// FilterBySearch keeps the entities whose searchable fields contain term,
// case-insensitively. An empty or whitespace-only term short-circuits to the
// unfiltered input. Matching is plain substring inclusion over the
// fallback-ordered field list, no tokenization or ranking.
func FilterBySearch[T any](entities []T, term string, fields func(T) []string) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return entities
	}
	term = strings.ToLower(term)

	filtered := make([]T, 0, len(entities))
	for _, e := range entities {
		for _, f := range fields(e) {
			if strings.Contains(strings.ToLower(f), term) {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}
