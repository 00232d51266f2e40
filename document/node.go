// Package document holds lesson data as an order-preserving JSON tree.
//
// Object members keep their source order and numbers keep their source
// text, so a tree that is decoded and encoded again differs only in
// layout.
package document

// Node is one value in a document tree. The set of node kinds is closed:
// String, Array, Object and Literal.
type Node interface {
	// Accept dispatches to the Visitor method for the node's kind and
	// returns its result.
	Accept(v Visitor) (Node, error)

	node()
}

// Visitor handles each node kind. A visitor that rebuilds the tree
// returns the replacement node; one that only inspects it returns the
// node it was given.
type Visitor interface {
	VisitString(s String) (Node, error)
	VisitArray(a Array) (Node, error)
	VisitObject(o Object) (Node, error)
	VisitLiteral(l Literal) (Node, error)
}

// String is a JSON string.
type String string

// Array is a JSON array.
type Array []Node

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Node
}

// Object is a JSON object with members in source order. Decode leaves
// at most one member per key; Get and With act on the first match.
type Object []Member

// Literal is a JSON number, true, false or null, held as its source text.
type Literal string

// Literals for the JSON keywords.
const (
	True  Literal = "true"
	False Literal = "false"
	Null  Literal = "null"
)

func (s String) Accept(v Visitor) (Node, error)  { return v.VisitString(s) }
func (a Array) Accept(v Visitor) (Node, error)   { return v.VisitArray(a) }
func (o Object) Accept(v Visitor) (Node, error)  { return v.VisitObject(o) }
func (l Literal) Accept(v Visitor) (Node, error) { return v.VisitLiteral(l) }

func (String) node()  {}
func (Array) node()   {}
func (Object) node()  {}
func (Literal) node() {}

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Node, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// With returns a copy of o in which the first member named key holds
// value. The member is appended when o has no such key.
func (o Object) With(key string, value Node) Object {
	out := make(Object, len(o), len(o)+1)
	copy(out, o)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Member{Key: key, Value: value})
}

// Keys returns the member keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}
