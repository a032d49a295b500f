package highlight

import (
	"errors"
	"sort"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// ErrNoQuery is returned when Run is called on an Engine whose
// language query failed to compile.
var ErrNoQuery = errors.New("highlight: no compiled query")

// Event is one step of the highlight stream: Source, Start, or End.
type Event struct {
	Kind  EventKind
	Start uint32 // valid for Source
	End   uint32 // valid for Source
	Class string // valid for Start
}

// EventKind discriminates the Event union.
type EventKind int

const (
	SourceEvent EventKind = iota
	HighlightStartEvent
	HighlightEndEvent
)

// Engine compiles one language's highlight query once and runs it
// against successive subtrees.
type Engine struct {
	query   *sitter.Query
	classes []string
}

// New compiles queryText against lang and returns an Engine. classes
// is the recognized-class list for §4.E resolution; pass nil to use
// DefaultClasses.
func New(lang sitter.Language, queryText string, classes []string) (*Engine, error) {
	q, err := sitter.NewQuery(lang, []byte(queryText))
	if err != nil {
		return nil, err
	}
	if classes == nil {
		classes = DefaultClasses
	}
	return &Engine{query: q, classes: classes}, nil
}

type capture struct {
	start, end uint32
	name       string
	text       string
}

type scope struct {
	start, end uint32
	inherits   bool
	defs       []definition
}

type definition struct {
	name      string
	start     uint32
	end       uint32
	class     string
	hasHi     bool
	valueKind bool
}

// Run produces the highlight event stream for root, covering exactly
// root's byte range, per §4.E.
func (e *Engine) Run(root sitter.Node, content []byte) ([]Event, error) {
	if e.query == nil {
		return nil, ErrNoQuery
	}

	qc := sitter.NewQueryCursor()
	it := qc.Matches(e.query, root, content)

	var scopes []scope
	var defs []capture
	var valueDefs []capture
	var refs []capture
	var classed []capture

	for {
		m := it.Next()
		if m == nil {
			break
		}
		for _, cap := range m.Captures {
			name := e.query.CaptureNameForID(cap.Index)
			n := cap.Node
			c := capture{start: n.StartByte(), end: n.EndByte(), name: name, text: n.Content(content)}
			switch name {
			case "local.scope":
				scopes = append(scopes, scope{start: c.start, end: c.end})
			case "local.definition":
				defs = append(defs, c)
			case "local.definition.value", "local.definition-value":
				valueDefs = append(valueDefs, c)
			case "local.reference":
				refs = append(refs, c)
			default:
				classed = append(classed, c)
			}
		}
	}

	sort.Slice(scopes, func(i, j int) bool { return scopes[i].start < scopes[j].start })
	attachDefinitions(scopes, defs, classed, false)
	attachDefinitions(scopes, valueDefs, classed, true)

	var spans []capture
	spans = append(spans, classed...)
	for _, r := range refs {
		if d, ok := resolveReference(scopes, r); ok && d.hasHi {
			spans = append(spans, capture{start: r.start, end: r.end, name: d.class})
			continue
		}
		spans = append(spans, r)
	}

	var result []Event
	resolved := resolveSpans(spans, e.classes)
	emitRange(resolved, root.StartByte(), root.EndByte(), &result)
	return result, nil
}

func attachDefinitions(scopes []scope, caps []capture, classed []capture, isValue bool) {
	for _, d := range caps {
		idx := innermostScope(scopes, d.start)
		if idx < 0 {
			continue
		}
		def := definition{name: d.text, start: d.start, end: d.end, valueKind: isValue}
		for _, c := range classed {
			if c.start == d.start && c.end == d.end {
				def.class, def.hasHi = c.name, true
			}
		}
		scopes[idx].defs = append(scopes[idx].defs, def)
	}
}

func innermostScope(scopes []scope, at uint32) int {
	best := -1
	for i, s := range scopes {
		if at >= s.start && at < s.end {
			if best < 0 || s.end-s.start < scopes[best].end-scopes[best].start {
				best = i
			}
		}
	}
	return best
}

func resolveReference(scopes []scope, r capture) (definition, bool) {
	idx := innermostScope(scopes, r.start)
	for idx >= 0 {
		for _, d := range scopes[idx].defs {
			if d.name == r.text {
				return d, true
			}
		}
		if !scopes[idx].inherits {
			break
		}
		idx = enclosingScope(scopes, idx)
	}
	return definition{}, false
}

func enclosingScope(scopes []scope, idx int) int {
	target := scopes[idx]
	best := -1
	for i, s := range scopes {
		if i == idx {
			continue
		}
		if target.start >= s.start && target.end <= s.end {
			if best < 0 || s.end-s.start < scopes[best].end-scopes[best].start {
				best = i
			}
		}
	}
	return best
}

type resolvedSpan struct {
	start, end uint32
	class      string
}

func resolveSpans(caps []capture, classes []string) []resolvedSpan {
	var spans []resolvedSpan
	for _, c := range caps {
		class, ok := resolveClass(c.name, classes)
		if !ok {
			continue
		}
		spans = append(spans, resolvedSpan{start: c.start, end: c.end, class: class})
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})
	return spans
}

// emitRange walks spans contained in [from, to), emitting Source
// fill for gaps and nested HighlightStart/End for each span, so the
// concatenation of Source ranges covers [from, to) exactly.
func emitRange(spans []resolvedSpan, from, to uint32, out *[]Event) {
	pos := from
	i := 0
	for i < len(spans) {
		s := spans[i]
		if s.start >= to {
			break
		}
		if s.start < pos {
			i++
			continue
		}
		if pos < s.start {
			*out = append(*out, Event{Kind: SourceEvent, Start: pos, End: s.start})
			pos = s.start
		}
		*out = append(*out, Event{Kind: HighlightStartEvent, Class: s.class})

		j := i + 1
		for j < len(spans) && spans[j].start < s.end {
			j++
		}
		emitRange(spans[i+1:j], s.start, s.end, out)

		*out = append(*out, Event{Kind: HighlightEndEvent})
		pos = s.end
		i = j
	}
	if pos < to {
		*out = append(*out, Event{Kind: SourceEvent, Start: pos, End: to})
	}
}
