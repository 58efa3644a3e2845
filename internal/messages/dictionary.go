package messages

import "slices"

// Messages is a flat key to text mapping, the content of one message file.
type Messages map[string]string

// Dictionary is the merged result of one resolution. Top-level values are
// either a string (a global entry) or Messages (a page or component
// namespace). It marshals to JSON in exactly that shape.
type Dictionary map[string]any

// Namespace returns the messages of a page or component namespace. It returns
// an empty, non-nil mapping when the name is absent or holds a global string.
func (d Dictionary) Namespace(name string) Messages {
	if ns, ok := d[name].(Messages); ok {
		return ns
	}
	return Messages{}
}

// Global returns a top-level entry, or "" when absent or when the key is a
// namespace.
func (d Dictionary) Global(key string) string {
	s, _ := d[key].(string)
	return s
}

// Lookup returns the text for key within namespace. Missing translations
// come back as "namespace.key" so they stay visible on the page without
// breaking it. An empty namespace looks the key up at the top level.
func (d Dictionary) Lookup(namespace, key string) string {
	if namespace == "" {
		if s, ok := d[key].(string); ok {
			return s
		}
		return key
	}
	if s, ok := d.Namespace(namespace)[key]; ok {
		return s
	}
	return namespace + "." + key
}

// Namespaces returns the names of all namespace entries, sorted.
func (d Dictionary) Namespaces() []string {
	names := make([]string, 0, len(d))
	for k, v := range d {
		if _, ok := v.(Messages); ok {
			names = append(names, k)
		}
	}
	slices.Sort(names)
	return names
}

// GlobalKeys returns the top-level string keys, sorted.
func (d Dictionary) GlobalKeys() []string {
	keys := make([]string, 0, len(d))
	for k, v := range d {
		if _, ok := v.(string); ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
