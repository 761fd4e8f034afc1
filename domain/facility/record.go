// Package facility holds the in-memory form of the ODHF facility
// directory and the query logic over it.
package facility

import (
	"bytes"
	"encoding/json"
)

// Record is a single facility row: cell values keyed by column name.
// A column missing from the map means the source row had no cell there.
type Record map[string]string

// Dataset is the loaded facility directory. Columns preserves the
// header order of the source file; Records preserves row order. Once
// built a Dataset is never mutated.
type Dataset struct {
	Columns []string
	Records []Record
}

// Empty reports whether the dataset is unusable: never loaded, no
// header, or no data rows.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Columns) == 0 || len(d.Records) == 0
}

// Row is a search result row that marshals as a JSON object with keys
// in insertion order, which a plain map would not preserve. A nil
// value serializes as JSON null.
type Row struct {
	keys   []string
	values map[string]*string
}

// NewRow returns an empty Row.
func NewRow() *Row {
	return &Row{values: make(map[string]*string)}
}

// Set adds or replaces a key. First insertion fixes the key's position.
func (r *Row) Set(key string, value *string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key, and whether the key is set.
func (r *Row) Get(key string) (*string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the row's keys in insertion order.
func (r *Row) Keys() []string {
	return r.keys
}

// MarshalJSON emits the row as an object with keys in insertion order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if v := r.values[key]; v == nil {
			buf.WriteString("null")
		} else {
			vb, err := json.Marshal(*v)
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
