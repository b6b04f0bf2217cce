package tui

import "testing"

func TestCursor_ResetStates(t *testing.T) {
	var c cursor

	c.reset(0)
	if c.active() || c.index != -1 {
		t.Fatalf("empty view must have index -1, got %d", c.index)
	}

	c.reset(3)
	if !c.active() || c.index != 0 {
		t.Fatalf("non-empty view must select the top, got %d", c.index)
	}
}

func TestCursor_WrapAround(t *testing.T) {
	var c cursor
	c.reset(4)

	for i := 0; i < 4; i++ {
		c.next()
	}
	if c.index != 0 {
		t.Fatalf("next()*L must return to start, got %d", c.index)
	}

	for i := 0; i < 4; i++ {
		c.prev()
	}
	if c.index != 0 {
		t.Fatalf("prev()*L must return to start, got %d", c.index)
	}

	c.prev()
	if c.index != 3 {
		t.Fatalf("prev from top must wrap to the bottom, got %d", c.index)
	}
}

func TestCursor_NavigationNoOpWhenEmpty(t *testing.T) {
	var c cursor
	c.reset(0)
	c.next()
	c.prev()
	if c.index != -1 {
		t.Fatalf("navigation on an empty view must stay at -1, got %d", c.index)
	}
}

func TestCursor_SelectAtBounds(t *testing.T) {
	var c cursor
	c.reset(3)

	if !c.selectAt(2) || c.index != 2 {
		t.Fatalf("selectAt(2) must move the cursor, got %d", c.index)
	}
	if c.selectAt(3) {
		t.Fatalf("selectAt past the end must be a no-op")
	}
	if c.selectAt(-1) {
		t.Fatalf("selectAt(-1) must be a no-op")
	}
	if c.index != 2 {
		t.Fatalf("failed selects must not move the cursor, got %d", c.index)
	}
}
