// Package record implements a streaming parser for a constrained line-based
// text notation and a JSON encoder for the values it produces.
//
// The notation is made of "key: value" lines, bare value lines and blank
// lines, with '#' introducing a comment anywhere on a line.  Consecutive
// lines of the same kind build up a record: key-value lines build an ordered
// mapping, bare lines build a list.  A record is complete (and emitted) when
// a line of the other kind arrives, when a key repeats within a mapping,
// when a blank line follows a list, or when the input ends.  Note the
// asymmetry: a blank line completes a pending list but not a pending
// mapping.  That is a long-standing quirk of the notation which consumers
// rely on, so it is preserved here.
//
// Parsing is a single-pass pull-driven operation: the consumer calls
// Parser.Next repeatedly and each completed record is returned as soon as
// its last contributing line has been read, so memory usage does not grow
// with the size of the input, only with the size of the record being built.
package record

// A Record is one parsed unit of output: either a *Mapping or a *List.
type Record interface {
	isRecord()
}

// A Pair is one key-value entry of a Mapping.
type Pair struct {
	Key   string
	Value string
}

// A Mapping is an ordered collection of key-value string pairs.  Keys are
// unique and iteration order is insertion order.  The index makes duplicate
// detection O(1) without giving up ordering, which Go maps do not provide.
type Mapping struct {
	pairs []Pair
	index map[string]int
}

var _ Record = &Mapping{}

func (m *Mapping) isRecord() {}

// NewMapping returns a new empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: map[string]int{}}
}

// Set inserts the key with the given value, or overwrites the value if the
// key is already present.  Insertion order of the first Set for a key is
// what determines output order.
func (m *Mapping) Set(key, value string) {
	if i, ok := m.index[key]; ok {
		m.pairs[i].Value = value
		return
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Has reports whether the key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value for the key and whether the key was present.
func (m *Mapping) Get(key string) (string, bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.pairs[i].Value, true
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.pairs)
}

// Pairs returns the entries in insertion order.  The returned slice is the
// mapping's own backing slice and must not be modified.
func (m *Mapping) Pairs() []Pair {
	return m.pairs
}

// A List is an ordered sequence of strings.
type List struct {
	items []string
}

var _ Record = &List{}

func (l *List) isRecord() {}

// NewList returns a new empty List.
func NewList() *List {
	return &List{}
}

// Append adds an item at the end of the list.
func (l *List) Append(item string) {
	l.items = append(l.items, item)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the items in order.  The returned slice is the list's own
// backing slice and must not be modified.
func (l *List) Items() []string {
	return l.items
}
