package record

import (
	"encoding/json"
	"fmt"

	"github.com/jupito/recstream/internal/format"
)

// An Encoder outputs records as JSON values, one value per line, using the
// given Printer instance and an optional Colorizer.
//
// A Mapping encodes as a JSON object with keys in insertion order, a List
// as a JSON array of strings.  All keys and values are JSON strings.
type Encoder struct {
	format.Printer
	*format.Colorizer
}

// Encode writes one record as a single line of JSON.
//
// An error can be returned if the Printer could not perform some writing
// operation.  A typical example is if it attempts to write to a closed pipe.
func (e *Encoder) Encode(rec Record) (err error) {
	defer format.CatchPrinterError(&err)
	switch v := rec.(type) {
	case *Mapping:
		e.writeMapping(v)
	case *List:
		e.writeList(v)
	default:
		panic(fmt.Sprintf("invalid record: %#v", rec))
	}
	e.EndRecord()
	return nil
}

func (e *Encoder) writeMapping(m *Mapping) {
	e.PrintBytes(openObjectBytes)
	for i, pair := range m.Pairs() {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
		}
		e.Colorizer.PrintKey(e.Printer, encodeString(pair.Key))
		e.PrintBytes(keyValueSeparatorBytes)
		e.Colorizer.PrintValue(e.Printer, encodeString(pair.Value))
	}
	e.PrintBytes(closeObjectBytes)
}

func (e *Encoder) writeList(l *List) {
	e.PrintBytes(openArrayBytes)
	for i, item := range l.Items() {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
		}
		e.Colorizer.PrintValue(e.Printer, encodeString(item))
	}
	e.PrintBytes(closeArrayBytes)
}

// encodeString returns the JSON representation of s, quotes included.
func encodeString(s string) []byte {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string cannot fail.
		panic(err)
	}
	return b
}

var (
	openObjectBytes        = []byte("{")
	closeObjectBytes       = []byte("}")
	openArrayBytes         = []byte("[")
	closeArrayBytes        = []byte("]")
	itemSeparatorBytes     = []byte(", ")
	keyValueSeparatorBytes = []byte(": ")
)
