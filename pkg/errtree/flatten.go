package errtree

import (
	"fmt"
	"slices"
	"strconv"
)

// Flat is one leaf failure addressed by a slash-delimited pointer into the
// validated value. The root is the empty path.
type Flat struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Flatten converts the tree into an ordered list of (path, message) pairs.
// Traversal order is fixed: a node's own failures first, then properties in
// declaration order, then items in ascending index order, descending
// depth-first. A non-empty tree always yields at least one entry.
func (e *Errors) Flatten() []Flat {
	if e.IsEmpty() {
		return nil
	}
	var out []Flat
	e.flatten("", &out)
	return out
}

func (e *Errors) flatten(path string, out *[]Flat) {
	for _, err := range e.direct {
		*out = append(*out, Flat{Path: path, Message: err.Message})
	}
	for _, key := range e.propKeys {
		e.properties[key].flatten(path+"/"+key, out)
	}
	indexes := slices.Clone(e.itemKeys)
	slices.Sort(indexes)
	for _, idx := range indexes {
		e.items[idx].flatten(path+"/"+itoa(idx), out)
	}
}

func itoa(i int) string { return strconv.Itoa(i) }

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
