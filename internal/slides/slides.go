package slides

import (
	"errors"
	"sort"
)

// ErrNoAudiencePages is returned by Build when a configured boundary
// list contains no page that exists in the document.
var ErrNoAudiencePages = errors.New("no valid audience pages")

// Slide is one logical presentation unit: the page shown to the
// audience plus the ordered presenter-only notes pages that follow it.
// All page numbers are 0-indexed into the document.
type Slide struct {
	AudiencePage int   `json:"audiencePage"`
	NotesPages   []int `json:"notesPages,omitempty"`
}

// Build maps a flat page sequence onto a slide sequence.
//
// Without audiencePages, pages are paired: 0/1, 2/3, 4/5 and so on,
// with the odd page out becoming a slide with no notes.
//
// With audiencePages (1-indexed, any order, duplicates and
// out-of-range values tolerated), each retained audience page owns
// every page up to the next retained audience page (or the document
// end) as its notes. Build returns ErrNoAudiencePages when filtering
// leaves nothing to present.
//
// The result is immutable for the session; callers rebuilding it must
// re-clamp their cursor.
func Build(totalPages int, audiencePages []int) ([]Slide, error) {
	if totalPages < 0 {
		totalPages = 0
	}
	if len(audiencePages) == 0 {
		return buildPaired(totalPages), nil
	}
	return buildConfigured(totalPages, audiencePages)
}

// buildPaired implements the default even/odd pairing.
func buildPaired(totalPages int) []Slide {
	deck := make([]Slide, 0, (totalPages+1)/2)
	for i := 0; i < totalPages; i += 2 {
		s := Slide{AudiencePage: i}
		if i+1 < totalPages {
			s.NotesPages = []int{i + 1}
		}
		deck = append(deck, s)
	}
	return deck
}

// buildConfigured partitions the page range at the configured
// audience-page boundaries.
func buildConfigured(totalPages int, audiencePages []int) ([]Slide, error) {
	seen := make(map[int]bool, len(audiencePages))
	markers := make([]int, 0, len(audiencePages))
	for _, p := range audiencePages {
		idx := p - 1
		if idx < 0 || idx >= totalPages || seen[idx] {
			continue
		}
		seen[idx] = true
		markers = append(markers, idx)
	}
	if len(markers) == 0 {
		return nil, ErrNoAudiencePages
	}
	sort.Ints(markers)

	deck := make([]Slide, 0, len(markers))
	for k, m := range markers {
		end := totalPages
		if k+1 < len(markers) {
			end = markers[k+1]
		}
		s := Slide{AudiencePage: m}
		for p := m + 1; p < end; p++ {
			s.NotesPages = append(s.NotesPages, p)
		}
		deck = append(deck, s)
	}
	return deck, nil
}
