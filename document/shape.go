package document

import (
	"errors"
	"fmt"
)

// ErrShape indicates a root that holds no recognizable list of units.
var ErrShape = errors.New("document: root is not a unit list, a unit container or a single unit")

// Shape is the form in which a document holds its units.
type Shape int

const (
	// ShapeSequence is an array of units.
	ShapeSequence Shape = iota + 1
	// ShapeContainer is an object whose container key holds an array of units.
	ShapeContainer
	// ShapeSingle is one unit object.
	ShapeSingle
)

func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeContainer:
		return "container"
	case ShapeSingle:
		return "single"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Root remembers where a document keeps its units so a rewritten list of
// units can be put back in the same form.
type Root struct {
	Shape Shape
	Units []Node

	container Object
	key       string
}

// ResolveUnits locates the units of root. An array root is the unit list
// itself. An object root is a container when containerKey holds an array,
// otherwise a single unit when it has a subunitsKey member.
func ResolveUnits(root Node, containerKey, subunitsKey string) (Root, error) {
	switch r := root.(type) {
	case Array:
		return Root{Shape: ShapeSequence, Units: r}, nil

	case Object:
		if v, ok := r.Get(containerKey); ok {
			if units, ok := v.(Array); ok {
				return Root{Shape: ShapeContainer, Units: units, container: r, key: containerKey}, nil
			}
		}
		if _, ok := r.Get(subunitsKey); ok {
			return Root{Shape: ShapeSingle, Units: Array{r}}, nil
		}
		return Root{}, fmt.Errorf("%w: object has neither %q list nor %q", ErrShape, containerKey, subunitsKey)
	}

	return Root{}, fmt.Errorf("%w: got %s", ErrShape, kindOf(root))
}

// Rebuild returns units in the shape the root was resolved from. Other
// members of a container object are kept in place.
func (r Root) Rebuild(units []Node) Node {
	switch r.Shape {
	case ShapeContainer:
		return r.container.With(r.key, Array(units))
	case ShapeSingle:
		if len(units) == 1 {
			return units[0]
		}
	}
	return Array(units)
}

func kindOf(n Node) string {
	switch n.(type) {
	case String:
		return "string"
	case Literal:
		return "literal"
	case Array:
		return "array"
	case Object:
		return "object"
	case nil:
		return "nothing"
	}
	return fmt.Sprintf("%T", n)
}
