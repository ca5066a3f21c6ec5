// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// DefaultRecentWindow is how far back a question still counts as recent
const DefaultRecentWindow = 24 * time.Hour

func (q Question) String() string {
	return q.QuestionText
}

// IsPublished reports whether pub_date is not after now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently reports whether pub_date lies within [now-window, now].
// Future questions are never recent.
func (q Question) WasPublishedRecently(now time.Time, window time.Duration) bool {
	if !q.IsPublished(now) {
		return false
	}
	return !q.PubDate.Before(now.Add(-window))
}
