package lesson

// Item is one authored lesson entry, e.g. a letter and how to sign it.
type Item struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Content string `yaml:"content"`
	Glyph   string `yaml:"glyph"` // Display glyph (hand emoji, braille cell). Optional.
}

// Set is a fixed, ordered sequence of lesson items. Order is navigation order.
type Set struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return len(s.Items)
}

// Cursor is the position of a Walker inside its set.
// Invariant: 0 <= Index < Total.
type Cursor struct {
	Index int
	Total int
}

// First reports whether the cursor is on the first item.
func (c Cursor) First() bool {
	return c.Index == 0
}

// Last reports whether the cursor is on the last item.
func (c Cursor) Last() bool {
	return c.Index == c.Total-1
}
