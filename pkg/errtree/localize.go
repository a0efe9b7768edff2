package errtree

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Translator renders a catalog message for a language. The args are
// alternating key/value pairs substituted into the template.
// *i18n.Translator satisfies this interface.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localized is the string-leaf variant of an Errors tree: same shape, same
// ordering, but every leaf already rendered to display text. Localizing is a
// value-preserving transform; it never drops or reorders nodes.
type Localized struct {
	shape      Shape
	messages   []string
	propKeys   []string
	properties map[string]*Localized
	itemKeys   []int
	items      map[int]*Localized
}

// Localize renders every leaf through the translator using the leaf's
// translation key and parameters. A leaf whose lookup produces an empty
// string falls back to its key, so a missing catalog entry still yields an
// identifiable message.
func (e *Errors) Localize(tr Translator, lang string) *Localized {
	return e.LocalizeFunc(func(err *Error) string {
		if msg := tr.T(lang, err.Key, err.Args()...); msg != "" {
			return msg
		}
		return err.Key
	})
}

// LocalizeFunc maps every leaf through fn, preserving tree shape.
func (e *Errors) LocalizeFunc(fn func(*Error) string) *Localized {
	if e == nil {
		return nil
	}
	l := &Localized{shape: e.shape}
	if len(e.direct) > 0 {
		l.messages = make([]string, len(e.direct))
		for i, err := range e.direct {
			l.messages[i] = fn(err)
		}
	}
	if len(e.propKeys) > 0 {
		l.propKeys = slices.Clone(e.propKeys)
		l.properties = make(map[string]*Localized, len(e.properties))
		for key, child := range e.properties {
			l.properties[key] = child.LocalizeFunc(fn)
		}
	}
	if len(e.itemKeys) > 0 {
		l.itemKeys = slices.Clone(e.itemKeys)
		l.items = make(map[int]*Localized, len(e.items))
		for idx, child := range e.items {
			l.items[idx] = child.LocalizeFunc(fn)
		}
	}
	return l
}

// Shape reports the node's structural variant.
func (l *Localized) Shape() Shape { return l.shape }

// Messages returns the node's rendered leaf messages in insertion order.
func (l *Localized) Messages() []string { return l.messages }

// PropertyKeys returns field keys in insertion order.
func (l *Localized) PropertyKeys() []string { return l.propKeys }

// Property returns the child for a field key, or nil.
func (l *Localized) Property(name string) *Localized { return l.properties[name] }

// ItemIndexes returns collection indices in insertion order.
func (l *Localized) ItemIndexes() []int { return l.itemKeys }

// Item returns the child for a collection index, or nil.
func (l *Localized) Item(index int) *Localized { return l.items[index] }

// Flatten converts the localized tree into ordered (path, message) pairs
// using the same traversal as Errors.Flatten.
func (l *Localized) Flatten() []Flat {
	if l == nil {
		return nil
	}
	var out []Flat
	l.flatten("", &out)
	return out
}

func (l *Localized) flatten(path string, out *[]Flat) {
	for _, msg := range l.messages {
		*out = append(*out, Flat{Path: path, Message: msg})
	}
	for _, key := range l.propKeys {
		l.properties[key].flatten(path+"/"+key, out)
	}
	indexes := slices.Clone(l.itemKeys)
	slices.Sort(indexes)
	for _, idx := range indexes {
		l.items[idx].flatten(path+"/"+itoa(idx), out)
	}
}

// MarshalJSON renders the localized tree with the same container layout as
// Errors.MarshalJSON.
func (l *Localized) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := l.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *Localized) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	first := true

	writeKey := func(key string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		b, _ := json.Marshal(key)
		buf.Write(b)
		buf.WriteByte(':')
	}

	if len(l.messages) > 0 {
		writeKey("errors")
		b, err := json.Marshal(l.messages)
		if err != nil {
			return err
		}
		buf.Write(b)
	}

	if len(l.propKeys) > 0 {
		writeKey("properties")
		buf.WriteByte('{')
		for i, key := range l.propKeys {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, _ := json.Marshal(key)
			buf.Write(b)
			buf.WriteByte(':')
			if err := l.properties[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	if len(l.itemKeys) > 0 {
		writeKey("items")
		buf.WriteByte('{')
		indexes := slices.Clone(l.itemKeys)
		slices.Sort(indexes)
		for i, idx := range indexes {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, _ := json.Marshal(itoa(idx))
			buf.Write(b)
			buf.WriteByte(':')
			if err := l.items[idx].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return nil
}
