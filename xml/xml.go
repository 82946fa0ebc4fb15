package xml

import (
	stdxml "encoding/xml"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// Parse selects how much of the input the reader keeps.
type Parse uint8

const (
	// Elements keeps element nodes and their text only.
	Elements Parse = iota
	// ElementsTrimmed also trims surrounding whitespace from text and
	// drops text that is whitespace only.
	ElementsTrimmed
	// Full keeps every node type.
	Full
	// FullTrimmed keeps every node type with trimmed text.
	FullTrimmed
)

func (p Parse) full() bool    { return p == Full || p == FullTrimmed }
func (p Parse) trimmed() bool { return p == ElementsTrimmed || p == FullTrimmed }

// Mode selects the output density of the writer.
type Mode uint8

const (
	// Compact adds no indentation.
	Compact Mode = iota
	// Readable indents four spaces per nesting level.
	Readable
)

// Read parses a document into its top-level nodes.
func Read(data []byte, parse Parse) ([]*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, parseError(err)
	}
	return fromTokens(doc.Child, parse, nil), nil
}

// ReadString parses a document from a string.
func ReadString(s string, parse Parse) ([]*Node, error) {
	return Read([]byte(s), parse)
}

// ReadFile parses the contents of the file at path; failure to read
// it reports FileIOError wrapping the os error.
func ReadFile(path string, parse Parse) ([]*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: FileIOError, err: err}
	}
	return Read(data, parse)
}

func parseError(err error) error {
	e := &Error{Code: ParseError, err: err}
	var se *stdxml.SyntaxError
	if errors.As(err, &se) {
		e.Line = se.Line
		e.Message = se.Msg
	} else {
		e.Message = err.Error()
	}
	return e
}

// fromTokens converts an etree token list. Text runs become the value
// of the enclosing element; only the first non-empty run is kept.
func fromTokens(tokens []etree.Token, parse Parse, parent *Node) []*Node {
	var out []*Node
	for _, tok := range tokens {
		switch tok := tok.(type) {
		case *etree.Element:
			node := NewElement(tok.FullTag())
			for _, attr := range tok.Attr {
				node.SetAttr(attr.FullKey(), attr.Value)
			}
			node.nodes = fromTokens(tok.Child, parse, node)
			out = append(out, node)
		case *etree.CharData:
			if tok.IsCData() {
				if parse.full() {
					out = append(out, NewNode(CData).SetValue(tok.Data))
				}
				continue
			}
			text := tok.Data
			if parse.trimmed() {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
			}
			if parent != nil && parent.value == "" {
				parent.value = text
			}
		case *etree.Comment:
			if parse.full() {
				out = append(out, NewNode(Comment).SetValue(tok.Data))
			}
		case *etree.Directive:
			if parse.full() {
				value := strings.TrimLeft(strings.TrimPrefix(tok.Data, "DOCTYPE"), " \t\r\n")
				out = append(out, NewNode(DocType).SetValue(value))
			}
		case *etree.ProcInst:
			if !parse.full() {
				continue
			}
			if tok.Target == "xml" {
				decl := NewNode(Declaration)
				for _, kv := range parsePseudoAttrs(tok.Inst) {
					decl.SetAttr(kv[0], kv[1])
				}
				out = append(out, decl)
			} else {
				out = append(out, NewNode(ProcInst).SetName(tok.Target).SetValue(tok.Inst))
			}
		}
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// parsePseudoAttrs scans the key="value" pairs in the body of an XML
// declaration.
func parsePseudoAttrs(s string) [][2]string {
	var out [][2]string
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		start := i
		for i < len(s) && s[i] != '=' && !isSpace(s[i]) {
			i++
		}
		key := s[start:i]
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if key == "" || i >= len(s) || s[i] != '=' {
			break
		}
		i++ // skip '='
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) || (s[i] != '"' && s[i] != '\'') {
			break
		}
		quote := s[i]
		i++
		vstart := i
		for i < len(s) && s[i] != quote {
			i++
		}
		if i >= len(s) {
			break
		}
		out = append(out, [2]string{key, s[vstart:i]})
		i++ // skip closing quote
	}
	return out
}

// Write serializes the nodes, delegating printing to etree.
func Write(nodes []*Node, mode Mode) ([]byte, error) {
	doc := etree.NewDocument()
	for _, node := range nodes {
		appendNode(&doc.Element, node)
	}
	if mode == Readable {
		doc.Indent(4)
	}
	return doc.WriteToBytes()
}

// WriteString serializes the nodes to a string.
func WriteString(nodes []*Node, mode Mode) (string, error) {
	data, err := Write(nodes, mode)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteTo serializes the nodes into w; a sink failure reports
// FileIOError wrapping the underlying error.
func WriteTo(w io.Writer, nodes []*Node, mode Mode) error {
	data, err := Write(nodes, mode)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &Error{Code: FileIOError, err: err}
	}
	return nil
}

// WriteFile serializes the nodes into the file at path, replacing it.
func WriteFile(path string, nodes []*Node, mode Mode) error {
	data, err := Write(nodes, mode)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &Error{Code: FileIOError, err: err}
	}
	return nil
}

// appendNode grafts a node onto an etree element. Element text is
// emitted before the children, matching where the reader finds it.
func appendNode(parent *etree.Element, node *Node) {
	switch node.typ {
	case Element:
		el := parent.CreateElement(node.name)
		if node.value != "" {
			el.CreateText(node.value)
		}
		for _, child := range node.nodes {
			appendNode(el, child)
		}
		for _, key := range sortedKeys(node.attribs) {
			el.CreateAttr(key, node.attribs[key])
		}
	case CData:
		parent.CreateCData(node.value)
	case Comment:
		parent.CreateComment(node.value)
	case Declaration:
		parent.CreateProcInst("xml", declarationInst(node.attribs))
	case DocType:
		parent.CreateDirective("DOCTYPE " + node.value)
	case ProcInst:
		parent.CreateProcInst(node.name, node.value)
	}
}

// declarationInst renders declaration attributes with version,
// encoding and standalone first, in that conventional order, then any
// others sorted by key.
func declarationInst(attribs map[string]string) string {
	var sb strings.Builder
	emit := func(key string) {
		val, ok := attribs[key]
		if !ok {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(val)
		sb.WriteByte('"')
	}
	emit("version")
	emit("encoding")
	emit("standalone")
	for _, key := range sortedKeys(attribs) {
		switch key {
		case "version", "encoding", "standalone":
			continue
		}
		emit(key)
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
