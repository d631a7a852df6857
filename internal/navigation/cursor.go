package navigation

import "pdf-presenter/internal/slides"

// Action identifies one navigation command. The vocabulary is closed;
// unknown actions are ignored by Apply.
type Action string

const (
	ActionNext        Action = "next"
	ActionPrev        Action = "prev"
	ActionFirst       Action = "first"
	ActionLast        Action = "last"
	ActionGoto        Action = "goto"
	ActionRefresh     Action = "refresh"
	ActionToggleBlank Action = "blank"
)

// Command is one navigation command. Target carries the 1-indexed
// slide number for ActionGoto and is ignored otherwise.
type Command struct {
	Action Action `json:"action"`
	Target int    `json:"target,omitempty"`
}

// Cursor is the current navigation position: which slide, which of its
// notes pages, and whether the audience screen is blanked. NotesIndex
// is only meaningful relative to the current slide and must be
// re-clamped (Clamp) whenever the slide sequence is rebuilt.
type Cursor struct {
	SlideIndex int  `json:"slideIndex"`
	NotesIndex int  `json:"notesIndex"`
	Blanked    bool `json:"blanked"`
}

// Apply returns the cursor after cmd, navigating deck. It is a pure
// transition function: boundary next/prev and out-of-range goto are
// no-ops, never errors. Any command except refresh un-blanks the
// screen before its own effect, so navigating away from a blanked
// state restores the audience view even when the move itself is a
// no-op. blank flips the pre-command value.
func (c Cursor) Apply(cmd Command, deck []slides.Slide) Cursor {
	if len(deck) == 0 {
		return c
	}
	switch cmd.Action {
	case ActionRefresh, ActionToggleBlank:
	default:
		c.Blanked = false
	}

	switch cmd.Action {
	case ActionNext:
		if c.NotesIndex < len(deck[c.SlideIndex].NotesPages)-1 {
			c.NotesIndex++
		} else if c.SlideIndex < len(deck)-1 {
			c.SlideIndex++
			c.NotesIndex = 0
		}
	case ActionPrev:
		if c.NotesIndex > 0 {
			c.NotesIndex--
		} else if c.SlideIndex > 0 {
			c.SlideIndex--
			c.NotesIndex = lastNotesIndex(deck[c.SlideIndex])
		}
	case ActionFirst:
		c.SlideIndex = 0
		c.NotesIndex = 0
	case ActionLast:
		c.SlideIndex = len(deck) - 1
		c.NotesIndex = lastNotesIndex(deck[c.SlideIndex])
	case ActionGoto:
		if cmd.Target >= 1 && cmd.Target <= len(deck) {
			c.SlideIndex = cmd.Target - 1
			c.NotesIndex = 0
		}
	case ActionToggleBlank:
		c.Blanked = !c.Blanked
	case ActionRefresh:
		// redraw only
	}
	return c
}

// Clamp forces the cursor into range for deck, for use after the slide
// sequence is rebuilt. An empty deck resets everything to zero.
func (c Cursor) Clamp(deck []slides.Slide) Cursor {
	if len(deck) == 0 {
		return Cursor{}
	}
	if c.SlideIndex < 0 {
		c.SlideIndex = 0
	}
	if c.SlideIndex >= len(deck) {
		c.SlideIndex = len(deck) - 1
	}
	if c.NotesIndex < 0 {
		c.NotesIndex = 0
	}
	if last := lastNotesIndex(deck[c.SlideIndex]); c.NotesIndex > last {
		c.NotesIndex = last
	}
	return c
}

// lastNotesIndex is the highest valid notes index of s, or 0 when s
// has no notes.
func lastNotesIndex(s slides.Slide) int {
	if len(s.NotesPages) == 0 {
		return 0
	}
	return len(s.NotesPages) - 1
}
