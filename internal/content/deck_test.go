package content

import (
	"testing"

	"github.com/leasemint/dataroom/internal/input"
	"github.com/leasemint/dataroom/internal/screen"
)

func deckOf(n int, sc screen.Controller) *Deck {
	slides := make([]Slide, n)
	for i := range slides {
		slides[i] = Slide{SequenceIndex: i, ImageReference: "/slides/en/s.png"}
	}
	return NewDeck(slides, sc)
}

func TestDeckNavigationClamps(t *testing.T) {
	d := deckOf(3, nil)

	// Previous at index 0 is a no-op.
	d.Prev()
	if d.Index() != 0 {
		t.Errorf("prev at first slide: index %d, want 0", d.Index())
	}

	d.Next()
	d.Next()
	if d.Index() != 2 {
		t.Fatalf("after two next: index %d, want 2", d.Index())
	}

	// Next at the last index is a no-op.
	d.Next()
	if d.Index() != 2 {
		t.Errorf("next at last slide: index %d, want 2", d.Index())
	}
}

func TestDeckJumpTo(t *testing.T) {
	d := deckOf(5, nil)

	for _, k := range []int{0, 3, 4, 1} {
		d.JumpTo(k)
		if d.Index() != k {
			t.Errorf("jump to %d: index %d", k, d.Index())
		}
	}

	d.JumpTo(99)
	if d.Index() != 4 {
		t.Errorf("jump past end: index %d, want 4", d.Index())
	}
	d.JumpTo(-1)
	if d.Index() != 0 {
		t.Errorf("jump before start: index %d, want 0", d.Index())
	}
}

func TestDeckEmptySequence(t *testing.T) {
	d := deckOf(0, nil)

	if !d.Empty() {
		t.Fatal("expected empty deck")
	}
	if _, ok := d.Current(); ok {
		t.Error("empty deck must not yield a current slide")
	}

	// Navigation never produces an out-of-bounds slide.
	d.Next()
	d.JumpTo(3)
	if d.Index() != 0 {
		t.Errorf("empty deck index moved to %d", d.Index())
	}
}

func TestDeckKeyboardMatchesControls(t *testing.T) {
	keys := input.NewFake()
	d := deckOf(3, nil)
	d.Mount(keys)

	keys.Press(input.KeyArrowRight)
	if d.Index() != 1 {
		t.Errorf("arrow right: index %d, want 1", d.Index())
	}
	keys.Press(input.KeySpace)
	if d.Index() != 2 {
		t.Errorf("space: index %d, want 2", d.Index())
	}
	keys.Press(input.KeyArrowLeft)
	if d.Index() != 1 {
		t.Errorf("arrow left: index %d, want 1", d.Index())
	}
}

func TestDeckUnmountDropsListeners(t *testing.T) {
	keys := input.NewFake()
	d := deckOf(3, nil)
	d.Mount(keys)

	if keys.SubscriberCount() != 1 {
		t.Fatalf("expected one subscriber after mount, got %d", keys.SubscriberCount())
	}

	d.Unmount()
	if keys.SubscriberCount() != 0 {
		t.Errorf("expected no subscribers after unmount, got %d", keys.SubscriberCount())
	}

	keys.Press(input.KeyArrowRight)
	if d.Index() != 0 {
		t.Error("unmounted deck must not handle input")
	}
}

func TestDeckFullscreenFollowsSurface(t *testing.T) {
	sc := screen.NewFake()
	d := deckOf(2, sc)

	d.ToggleFullscreen()
	if !d.Fullscreen() {
		t.Fatal("expected fullscreen after confirmed enter")
	}

	// Out-of-band exit (system escape) must be reflected.
	sc.ForceExit()
	if d.Fullscreen() {
		t.Error("expected fullscreen flag cleared after out-of-band exit")
	}

	// A rejected request leaves the flag unchanged.
	sc.RejectEnter = true
	d.ToggleFullscreen()
	if d.Fullscreen() {
		t.Error("rejected enter must not set the flag")
	}
}

func TestDeckEscapeExitsFullscreen(t *testing.T) {
	sc := screen.NewFake()
	keys := input.NewFake()
	d := deckOf(2, sc)
	d.Mount(keys)

	d.ToggleFullscreen()
	keys.Press(input.KeyEscape)
	if d.Fullscreen() {
		t.Error("escape must exit fullscreen")
	}
	if d.Index() != 0 {
		t.Error("escape must not move the slide index")
	}
}

func TestEmbeddedLoadingAndFullscreen(t *testing.T) {
	sc := screen.NewFake()
	e := NewEmbedded("https://deck.example.com/en", sc)

	if !e.Loading() {
		t.Error("embed must start in loading state")
	}
	e.MarkLoaded()
	if e.Loading() {
		t.Error("expected loading cleared")
	}

	if e.URL() != "https://deck.example.com/en" {
		t.Errorf("escape hatch URL mismatch: %q", e.URL())
	}

	e.ToggleFullscreen()
	if !e.Fullscreen() {
		t.Error("expected fullscreen after toggle")
	}
	sc.ForceExit()
	if e.Fullscreen() {
		t.Error("expected fullscreen cleared after out-of-band exit")
	}
}
