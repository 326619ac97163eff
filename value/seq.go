package value

import "strings"

// kind tags a Seq as either an S-Expression or a Q-Expression. The two
// share identical structure (spec.md §3): an ordered sequence of owned
// children; they differ only in whether the evaluator evaluates them.
type kind uint8

const (
	kindSExpr kind = iota
	kindQExpr
)

// Seq is the ordered-sequence backing store for both SExpr and QExpr.
// Shaped after sx's list.go Pair/ListBuilder append discipline, adapted
// from a cons-list to a slice because spec.md §3 models
// SExpr/QExpr as vectors, not cons cells.
type Seq struct {
	kind  kind
	items []Object
}

// MakeSExpr creates an empty SExpr, or one seeded with the given items.
func MakeSExpr(items ...Object) *Seq { return &Seq{kind: kindSExpr, items: items} }

// MakeQExpr creates an empty QExpr, or one seeded with the given items.
func MakeQExpr(items ...Object) *Seq { return &Seq{kind: kindQExpr, items: items} }

func (s *Seq) IsAtom() bool { return false }

// IsSExpr reports whether this sequence is tagged as an SExpr.
func (s *Seq) IsSExpr() bool { return s.kind == kindSExpr }

// IsQExpr reports whether this sequence is tagged as a QExpr.
func (s *Seq) IsQExpr() bool { return s.kind == kindQExpr }

// TypeName returns the diagnostic label used in error messages
// (spec.md §4.4: "S-Expression" / "Q-Expression").
func (s *Seq) TypeName() string {
	if s.IsQExpr() {
		return "Q-Expression"
	}
	return "S-Expression"
}

// Len returns the number of children.
func (s *Seq) Len() int { return len(s.items) }

// Get returns the child at index i without removing it.
func (s *Seq) Get(i int) Object { return s.items[i] }

// Items returns the children in order. The returned slice aliases the
// Seq's storage and must not be mutated by the caller.
func (s *Seq) Items() []Object { return s.items }

// Append mutates the sequence by pushing child onto its tail.
func (s *Seq) Append(child Object) { s.items = append(s.items, child) }

// Pop removes the element at index i and returns it; the sequence's length
// decreases by one and retains its other elements in order.
func (s *Seq) Pop(i int) Object {
	v := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return v
}

// Take removes and returns the element at index i, then drops the
// (now-shorter) container. Expresses "consume a head, keep working on the
// tail" without an extra copy.
func (s *Seq) Take(i int) Object {
	v := s.Pop(i)
	s.items = nil
	return v
}

// AsSExpr returns a new SExpr-tagged Seq sharing this one's children.
func (s *Seq) AsSExpr() *Seq { return &Seq{kind: kindSExpr, items: s.items} }

// AsQExpr returns a new QExpr-tagged Seq sharing this one's children.
func (s *Seq) AsQExpr() *Seq { return &Seq{kind: kindQExpr, items: s.items} }

func (s *Seq) copy() Object {
	items := make([]Object, len(s.items))
	for i, it := range s.items {
		items[i] = Copy(it)
	}
	return &Seq{kind: s.kind, items: items}
}

func (s *Seq) IsEqual(other Object) bool {
	os, ok := other.(*Seq)
	if !ok || s.kind != os.kind || len(s.items) != len(os.items) {
		return false
	}
	for i, it := range s.items {
		if !it.IsEqual(os.items[i]) {
			return false
		}
	}
	return true
}

func (s *Seq) String() string {
	open, close := "(", ")"
	if s.IsQExpr() {
		open, close = "{", "}"
	}
	var sb strings.Builder
	sb.WriteString(open)
	for i, it := range s.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(it.String())
	}
	sb.WriteString(close)
	return sb.String()
}

// GetSeq returns obj as a Seq, if possible.
func GetSeq(obj Object) (*Seq, bool) {
	s, ok := obj.(*Seq)
	return s, ok
}
