package tui

// Chooser cycles through a fixed list of options. Index -1 means nothing is
// selected yet.
type Chooser struct {
	Options []string
	Index   int
}

func NewChooser(options []string) *Chooser {
	return &Chooser{Options: options}
}

// NewEmptyChooser starts with no selection
func NewEmptyChooser(options []string) *Chooser {
	return &Chooser{Options: options, Index: -1}
}

func (c *Chooser) Next() {
	if len(c.Options) == 0 {
		return
	}
	c.Index = (c.Index + 1) % len(c.Options)
}

func (c *Chooser) Prev() {
	if len(c.Options) == 0 {
		return
	}
	if c.Index <= 0 {
		c.Index = len(c.Options) - 1
		return
	}
	c.Index--
}

// Selected returns the current option, if any
func (c *Chooser) Selected() (string, bool) {
	if c.Index < 0 || c.Index >= len(c.Options) {
		return "", false
	}
	return c.Options[c.Index], true
}

func (c *Chooser) Reset(index int) {
	c.Index = index
}
