// Package view derives ordered, filtered views over entry collections.
// The source collection carries no ordering guarantee; every ordering a
// screen shows is applied here.
package view

import (
	"sort"
	"strings"

	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/models"
)

// View filters entries by a case-insensitive substring match of term
// against the entry body, then orders the result by key. An empty term
// matches everything. The input slice is never mutated; ties keep their
// original relative order.
func View(entries []models.Entry, term string, key constants.SortKey) []models.Entry {
	out := Filter(entries, term)
	Sort(out, key)
	return out
}

// Filter returns a new slice holding the entries whose body contains
// term, compared case-insensitively.
func Filter(entries []models.Entry, term string) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	needle := strings.ToLower(term)
	for _, e := range entries {
		if needle == "" || strings.Contains(strings.ToLower(e.Text), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Sort orders entries in place by the given key using a stable sort.
// Entries without a displayable mood score sort last under both mood
// orders. An unrecognized key leaves the order untouched.
func Sort(entries []models.Entry, key constants.SortKey) {
	switch key {
	case constants.SortNewest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		})
	case constants.SortOldest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		})
	case constants.SortMoodHigh:
		sort.SliceStable(entries, func(i, j int) bool {
			return sortableMood(entries[i]) > sortableMood(entries[j])
		})
	case constants.SortMoodLow:
		sort.SliceStable(entries, func(i, j int) bool {
			mi, mj := sortableMood(entries[i]), sortableMood(entries[j])
			// Unknown moods stay at the back even in ascending order
			if mi == moodUnknown || mj == moodUnknown {
				return mi > mj
			}
			return mi < mj
		})
	}
}

// moodUnknown sorts below every valid score so unknown entries land last.
const moodUnknown = 0

func sortableMood(e models.Entry) int {
	if !e.HasMood() {
		return moodUnknown
	}
	return *e.MoodScore
}
