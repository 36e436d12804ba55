package dijkstra

// Cursor replays a recorded Step sequence one snapshot at a time.
// It only moves an index; the steps themselves are never modified.
type Cursor struct {
	steps []Step
	pos   int
}

// NewCursor positions a cursor at the first step.
func NewCursor(steps []Step) *Cursor {
	return &Cursor{steps: steps}
}

// Len returns the number of steps.
func (c *Cursor) Len() int { return len(c.steps) }

// Index returns the current position.
func (c *Cursor) Index() int { return c.pos }

// Current returns the step under the cursor; ok is false for an empty history.
func (c *Cursor) Current() (Step, bool) {
	if len(c.steps) == 0 {
		return Step{}, false
	}
	return c.steps[c.pos], true
}

// Next advances by one step and reports whether it moved.
func (c *Cursor) Next() bool {
	if c.pos+1 >= len(c.steps) {
		return false
	}
	c.pos++
	return true
}

// Prev moves back by one step and reports whether it moved.
func (c *Cursor) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}

// Seek jumps to step i; out-of-range positions leave the cursor unchanged.
func (c *Cursor) Seek(i int) bool {
	if i < 0 || i >= len(c.steps) {
		return false
	}
	c.pos = i
	return true
}

// Reset rewinds to the first step.
func (c *Cursor) Reset() { c.pos = 0 }

// Done reports whether the cursor is on the last step (or the history is empty).
func (c *Cursor) Done() bool { return c.pos+1 >= len(c.steps) }
