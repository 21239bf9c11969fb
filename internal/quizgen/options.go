package quizgen

import "github.com/edonnat/chronos/internal/catalog"

// OptionSetSize is the target size of a multiple-choice set: one
// correct answer plus three distractors. Sets may come up short when
// the catalog lacks enough non-colliding candidates.
const OptionSetSize = 4

// descriptionPoolSize bounds the chronological-proximity pool that
// description distractors are sampled from. The nearest events in time
// make the hardest distractors.
const descriptionPoolSize = 12

// LocationOptions builds the option set for a "where did this happen"
// question: the correct place, up to two distractors from the same
// region (the plausible confusions), and the remainder from other
// regions. Deduplicated by display string.
func LocationOptions(ev catalog.Event, rng Rand) []Option {
	opts := []Option{{Label: ev.Location.Place, EventID: ev.ID, Correct: true}}
	used := map[string]bool{ev.Location.Place: true}

	var sameRegion, otherRegion []catalog.Event
	for _, other := range catalog.Events() {
		if other.ID == ev.ID {
			continue
		}
		if other.Location.Region == ev.Location.Region {
			sameRegion = append(sameRegion, other)
		} else {
			otherRegion = append(otherRegion, other)
		}
	}

	take := func(pool []catalog.Event, max int) {
		for _, i := range sample(rng, len(pool), len(pool)) {
			if max <= 0 || len(opts) >= OptionSetSize {
				return
			}
			place := pool[i].Location.Place
			if used[place] {
				continue
			}
			used[place] = true
			opts = append(opts, Option{Label: place, EventID: pool[i].ID})
			max--
		}
	}
	take(sameRegion, 2)
	take(otherRegion, OptionSetSize-len(opts))

	shuffleOptions(rng, opts)
	return opts
}

// WhatOptions builds the option set for a "what happened in this year"
// question: the correct event's title plus distractor titles preferring
// the sibling events of the current lesson, then the wider catalog.
// Deduplicated by event id.
func WhatOptions(ev catalog.Event, siblingIDs []string, rng Rand) []Option {
	opts := []Option{{Label: ev.Title, EventID: ev.ID, Correct: true}}
	used := map[string]bool{ev.ID: true}
	usedLabel := map[string]bool{ev.Title: true}

	take := func(pool []catalog.Event) {
		for _, i := range sample(rng, len(pool), len(pool)) {
			if len(opts) >= OptionSetSize {
				return
			}
			cand := pool[i]
			if used[cand.ID] || usedLabel[cand.Title] {
				continue
			}
			used[cand.ID] = true
			usedLabel[cand.Title] = true
			opts = append(opts, Option{Label: cand.Title, EventID: cand.ID})
		}
	}
	take(catalog.GetEvents(siblingIDs))
	take(catalog.Events())

	shuffleOptions(rng, opts)
	return opts
}

// DescriptionOptions builds the option set for a description-match
// question: the correct event's short description plus distractors
// sampled from the chronologically nearest events, falling back to
// farther ones when the near pool is exhausted by label collisions.
func DescriptionOptions(ev catalog.Event, rng Rand) []Option {
	opts := []Option{{Label: ev.ShortDescription(), EventID: ev.ID, Correct: true}}
	used := map[string]bool{ev.ShortDescription(): true}

	ranked := byTimeDistance(ev)

	// Sample from the near pool first, then walk outward.
	pool := ranked
	if len(pool) > descriptionPoolSize {
		pool = ranked[:descriptionPoolSize]
	}
	for _, i := range sample(rng, len(pool), len(pool)) {
		if len(opts) >= OptionSetSize {
			break
		}
		label := pool[i].ShortDescription()
		if used[label] {
			continue
		}
		used[label] = true
		opts = append(opts, Option{Label: label, EventID: pool[i].ID})
	}
	for _, cand := range ranked[min(descriptionPoolSize, len(ranked)):] {
		if len(opts) >= OptionSetSize {
			break
		}
		label := cand.ShortDescription()
		if used[label] {
			continue
		}
		used[label] = true
		opts = append(opts, Option{Label: label, EventID: cand.ID})
	}

	shuffleOptions(rng, opts)
	return opts
}

// byTimeDistance returns every other catalog event ordered by distance
// in time from ev's representative year, nearest first.
func byTimeDistance(ev catalog.Event) []catalog.Event {
	ref := ev.RepresentativeYear()
	all := catalog.Events()
	out := make([]catalog.Event, 0, len(all)-1)
	for _, other := range all {
		if other.ID != ev.ID {
			out = append(out, other)
		}
	}
	// Insertion sort on absolute distance; the catalog is small and
	// already near-chronological.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && timeDist(out[j], ref) < timeDist(out[j-1], ref); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func timeDist(ev catalog.Event, ref int64) int64 {
	d := ev.RepresentativeYear() - ref
	if d < 0 {
		return -d
	}
	return d
}

func shuffleOptions(rng Rand, opts []Option) {
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
}
