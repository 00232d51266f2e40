package document

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for input that is not a single JSON value.
var (
	ErrSyntax       = errors.New("document: invalid JSON")
	ErrTrailingData = errors.New("document: trailing data after value")
)

// DefaultIndent is the indentation Encode uses for lesson files.
const DefaultIndent = "  "

// Decode reads exactly one JSON value from r.
func Decode(r io.Reader) (Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	n, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return n, nil
}

// Parse decodes data.
func Parse(data []byte) (Node, error) {
	return Decode(bytes.NewReader(data))
}

// Load decodes the file at path.
func Load(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer func() { _ = f.Close() }()

	n, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func decodeValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
		return nil, fmt.Errorf("unexpected %q", t)
	case string:
		return String(t), nil
	case json.Number:
		return Literal(t), nil
	case bool:
		if t {
			return True, nil
		}
		return False, nil
	case nil:
		return Null, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (Node, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// decodeObject keeps one member per key. A repeated key takes the last
// value at the position of its first occurrence.
func decodeObject(dec *json.Decoder) (Node, error) {
	obj := Object{}
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if i, ok := seen[key]; ok {
			obj[i].Value = v
			continue
		}
		seen[key] = len(obj)
		obj = append(obj, Member{Key: key, Value: v})
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// Encode writes n to w as JSON followed by a newline. Nested values are
// indented by indent per level; an empty indent writes compact JSON.
// Non-ASCII text is written as-is rather than escaped.
func Encode(w io.Writer, n Node, indent string) error {
	bw := bufio.NewWriter(w)
	e := &encoder{w: bw, indent: indent}
	if _, err := n.Accept(e); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// Marshal returns the encoding of n with DefaultIndent.
func Marshal(n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n, DefaultIndent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encoder writes the tree as it visits it. Write errors surface from the
// final Flush of the underlying bufio.Writer.
type encoder struct {
	w      *bufio.Writer
	indent string
	depth  int
	quote  bytes.Buffer
}

func (e *encoder) VisitString(s String) (Node, error) {
	if err := e.writeQuoted(string(s)); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *encoder) VisitLiteral(l Literal) (Node, error) {
	_, _ = e.w.WriteString(string(l))
	return l, nil
}

func (e *encoder) VisitArray(a Array) (Node, error) {
	if len(a) == 0 {
		_, _ = e.w.WriteString("[]")
		return a, nil
	}

	_ = e.w.WriteByte('[')
	e.depth++
	for i, v := range a {
		if i > 0 {
			_ = e.w.WriteByte(',')
		}
		e.newline()
		if _, err := v.Accept(e); err != nil {
			return nil, err
		}
	}
	e.depth--
	e.newline()
	_ = e.w.WriteByte(']')
	return a, nil
}

func (e *encoder) VisitObject(o Object) (Node, error) {
	if len(o) == 0 {
		_, _ = e.w.WriteString("{}")
		return o, nil
	}

	_ = e.w.WriteByte('{')
	e.depth++
	for i, m := range o {
		if i > 0 {
			_ = e.w.WriteByte(',')
		}
		e.newline()
		if err := e.writeQuoted(m.Key); err != nil {
			return nil, err
		}
		_ = e.w.WriteByte(':')
		if e.indent != "" {
			_ = e.w.WriteByte(' ')
		}
		if _, err := m.Value.Accept(e); err != nil {
			return nil, err
		}
	}
	e.depth--
	e.newline()
	_ = e.w.WriteByte('}')
	return o, nil
}

func (e *encoder) newline() {
	if e.indent == "" {
		return
	}
	_ = e.w.WriteByte('\n')
	_, _ = e.w.WriteString(strings.Repeat(e.indent, e.depth))
}

func (e *encoder) writeQuoted(s string) error {
	e.quote.Reset()
	enc := json.NewEncoder(&e.quote)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding string: %w", err)
	}
	// Encode terminates each value with a newline.
	_, err := e.w.Write(bytes.TrimSuffix(e.quote.Bytes(), []byte("\n")))
	return err
}
