package presenter

import (
	"fmt"
	"sync"

	"pdf-presenter/internal/navigation"
	"pdf-presenter/internal/slides"
)

// TargetKind tells a display surface what to draw.
type TargetKind string

const (
	// TargetPage renders a document page.
	TargetPage TargetKind = "page"
	// TargetBlank renders a solid background (audience surface only).
	TargetBlank TargetKind = "blank"
	// TargetNoNotes renders the "No notes available" placeholder
	// (notes surface only).
	TargetNoNotes TargetKind = "no-notes"
)

// RenderTarget is what one surface should show. Page is 0-indexed and
// only meaningful for TargetPage.
type RenderTarget struct {
	Kind TargetKind `json:"kind"`
	Page int        `json:"page,omitempty"`
}

// DisplayUpdate is the full render instruction broadcast to both
// surfaces after every command.
type DisplayUpdate struct {
	Audience       RenderTarget `json:"audience"`
	Notes          RenderTarget `json:"notes"`
	AudienceStatus string       `json:"audienceStatus"`
	NotesStatus    string       `json:"notesStatus"`
	Slide          int          `json:"slide"`      // 1-indexed
	SlideCount     int          `json:"slideCount"`
	Blanked        bool         `json:"blanked"`
}

// Display receives render instructions from the controller.
type Display interface {
	Show(DisplayUpdate)
}

// Controller owns the immutable slide sequence and the mutable cursor,
// applies navigation commands one at a time, and pushes the derived
// display update to the attached Display.
type Controller struct {
	mu      sync.Mutex
	deck    []slides.Slide
	cursor  navigation.Cursor
	display Display
}

// New creates a controller over deck. The deck must be non-empty; an
// empty deck means there is nothing to present and is rejected at
// startup before a controller exists.
func New(deck []slides.Slide, display Display) (*Controller, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("empty slide sequence")
	}
	return &Controller{deck: deck, display: display}, nil
}

// Handle applies one command and dispatches the resulting display
// update. Application and dispatch happen under one lock, so commands
// are serialized and updates reach the Display in cursor order.
func (c *Controller) Handle(cmd navigation.Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = c.cursor.Apply(cmd, c.deck)
	c.display.Show(c.derive())
}

// Current returns the display update for the present position without
// changing state, for clients that connect mid-session.
func (c *Controller) Current() DisplayUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.derive()
}

// Reload swaps in a rebuilt slide sequence and re-clamps the cursor
// against it, then redraws. The deck must be non-empty.
func (c *Controller) Reload(deck []slides.Slide) error {
	if len(deck) == 0 {
		return fmt.Errorf("empty slide sequence")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deck = deck
	c.cursor = c.cursor.Clamp(deck)
	c.display.Show(c.derive())
	return nil
}

// derive computes the render targets and status strings for the
// current cursor. Callers hold c.mu.
func (c *Controller) derive() DisplayUpdate {
	cur := c.deck[c.cursor.SlideIndex]

	update := DisplayUpdate{
		Slide:      c.cursor.SlideIndex + 1,
		SlideCount: len(c.deck),
		Blanked:    c.cursor.Blanked,
	}

	if c.cursor.Blanked {
		update.Audience = RenderTarget{Kind: TargetBlank}
	} else {
		update.Audience = RenderTarget{Kind: TargetPage, Page: cur.AudiencePage}
	}

	// Notes stay visible to the presenter even while the audience
	// screen is blanked.
	if len(cur.NotesPages) == 0 {
		update.Notes = RenderTarget{Kind: TargetNoNotes}
	} else {
		update.Notes = RenderTarget{Kind: TargetPage, Page: cur.NotesPages[c.cursor.NotesIndex]}
	}

	position := fmt.Sprintf("Slide %d/%d", update.Slide, update.SlideCount)
	notesPosition := position
	if len(cur.NotesPages) > 1 {
		notesPosition = fmt.Sprintf("%s (Notes %d/%d)", position, c.cursor.NotesIndex+1, len(cur.NotesPages))
	}
	blanked := ""
	if c.cursor.Blanked {
		blanked = " [BLANKED]"
	}
	update.AudienceStatus = "Audience View - " + position + blanked
	update.NotesStatus = "Presenter Notes - " + notesPosition + blanked

	return update
}
