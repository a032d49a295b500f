package lang

import "strings"

var registry = map[string]*Binding{}

func register(b *Binding) {
	for _, ext := range b.Extensions {
		registry[ext] = b
	}
}

// ForExtension resolves a file extension (with or without a leading
// dot) to its language binding. Per §6, an unrecognized extension
// falls back to Python.
func ForExtension(ext string) *Binding {
	ext = strings.TrimPrefix(ext, ".")
	ext = strings.ToLower(ext)
	if b, ok := registry[ext]; ok {
		return b
	}
	return Python
}

// Named resolves a binding by its Name field, used by host commands
// that address a language directly (§4.L).
func Named(name string) (*Binding, bool) {
	switch name {
	case Python.Name:
		return Python, true
	case Java.Name:
		return Java, true
	case CSharp.Name:
		return CSharp, true
	default:
		return nil, false
	}
}

func init() {
	register(Python)
	register(Java)
	register(CSharp)
}
