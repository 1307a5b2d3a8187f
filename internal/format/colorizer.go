package format

// A Colorizer holds the ANSI codes used to color record output.  A nil
// *Colorizer is valid and prints everything uncolored, so callers never need
// to check for nil before using one.
type Colorizer struct {
	KeyColorCode   []byte
	ValueColorCode []byte
	ResetCode      []byte
}

// PrintKey prints the bytes of an object key, colored if c is not nil.
func (c *Colorizer) PrintKey(p Printer, b []byte) {
	if c != nil {
		p.PrintBytes(c.KeyColorCode)
	}
	p.PrintBytes(b)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}

// PrintValue prints the bytes of a string value, colored if c is not nil.
func (c *Colorizer) PrintValue(p Printer, b []byte) {
	if c != nil {
		p.PrintBytes(c.ValueColorCode)
	}
	p.PrintBytes(b)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}
