package tui

// cursor is the wrap-around selection over the filtered result view.
//
// index is -1 exactly when the view is empty. Whenever the view is replaced
// the cursor resets to the top; navigation wraps in both directions.
type cursor struct {
	index  int
	length int
}

func (c *cursor) reset(n int) {
	c.length = n
	if n == 0 {
		c.index = -1
		return
	}
	c.index = 0
}

func (c *cursor) active() bool { return c.index >= 0 }

func (c *cursor) next() {
	if c.length == 0 {
		return
	}
	c.index = (c.index + 1) % c.length
}

func (c *cursor) prev() {
	if c.length == 0 {
		return
	}
	c.index = (c.index - 1 + c.length) % c.length
}

// selectAt moves the cursor to an explicitly clicked row; out-of-range
// indices are ignored.
func (c *cursor) selectAt(k int) bool {
	if k < 0 || k >= c.length {
		return false
	}
	c.index = k
	return true
}
