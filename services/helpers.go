package services

import "time"

// Clock supplies the ambient current time. Services take it as a dependency
// so tests can pin "now"; passing nil selects time.Now.
type Clock func() time.Time

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// truncate bounds a list to at most max items, preserving order. Ordering is
// the upstream's responsibility; this never re-sorts to pick a "top N".
// A non-positive max means no bound.
func truncate[T any](items []T, max int) []T {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
