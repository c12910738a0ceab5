package service

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gestorhq/gestor-be/types"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor pulls plain text out of a PDF by scanning the text
// operators of each page's decoded content stream. Line flow follows the
// text-positioning operators; there is no layout reconstruction.
type PDFExtractor struct {
	conf *model.Configuration
}

func NewPDFExtractor() *PDFExtractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFExtractor{conf: conf}
}

func (e *PDFExtractor) Extract(doc types.UploadedDocument) (types.ExtractedText, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(doc.Content), e.conf)
	if err != nil {
		return types.ExtractedText{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var b strings.Builder
	for page := 1; page <= ctx.PageCount; page++ {
		r, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil {
			log.Printf("pdf: skipping page %d of %s: %v", page, doc.FileName, err)
			continue
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			log.Printf("pdf: skipping page %d of %s: %v", page, doc.FileName, err)
			continue
		}
		b.WriteString(decodeTextOperators(content))
		b.WriteByte('\n')
	}

	text := collapseBlankLines(b.String())
	if text == "" {
		return types.ExtractedText{}, fmt.Errorf("%w: document contains no text", ErrExtractionFailed)
	}
	return newExtractedText(text, doc.FileName), nil
}

// decodeTextOperators scans one decoded content stream and emits the
// string operands of the text-showing operators (Tj, TJ, ', ") in stream
// order. Text-positioning operators (Td, TD, T*) and ET each force a
// line break.
func decodeTextOperators(content []byte) string {
	var (
		out     strings.Builder
		pending []string
	)

	flush := func() {
		for _, s := range pending {
			out.WriteString(s)
		}
		pending = pending[:0]
	}

	i := 0
	n := len(content)
	for i < n {
		c := content[i]
		switch {
		case c == '%':
			for i < n && content[i] != '\n' && content[i] != '\r' {
				i++
			}
		case c == '(':
			s, next := readLiteralString(content, i)
			pending = append(pending, s)
			i = next
		case c == '<':
			if i+1 < n && content[i+1] == '<' {
				i += 2
				continue
			}
			s, next := readHexString(content, i)
			pending = append(pending, s)
			i = next
		case isRegular(c):
			start := i
			for i < n && isRegular(content[i]) {
				i++
			}
			switch string(content[start:i]) {
			case "Tj", "TJ":
				flush()
			case "'", "\"":
				out.WriteByte('\n')
				flush()
			case "Td", "TD", "T*", "ET":
				out.WriteByte('\n')
				pending = pending[:0]
			default:
				// numbers, names, other operators: operands are dropped
				if !isOperandToken(content[start:i]) {
					pending = pending[:0]
				}
			}
		default:
			i++
		}
	}
	return out.String()
}

// isOperandToken reports whether a regular-character token is a numeric
// operand or a name rather than an operator, so intervening operands do
// not discard strings collected for an upcoming TJ array.
func isOperandToken(tok []byte) bool {
	if len(tok) == 0 {
		return false
	}
	c := tok[0]
	return c == '/' || c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func isRegular(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32, '(', ')', '<', '>', '[', ']', '{', '}', '%':
		return false
	}
	return true
}

// readLiteralString decodes a PDF literal string starting at the '(' in
// content[i], honoring nesting and backslash escapes.
func readLiteralString(content []byte, i int) (string, int) {
	var b strings.Builder
	depth := 0
	n := len(content)
	for ; i < n; i++ {
		c := content[i]
		switch c {
		case '(':
			depth++
			if depth > 1 {
				b.WriteByte(c)
			}
		case ')':
			depth--
			if depth == 0 {
				return b.String(), i + 1
			}
			b.WriteByte(c)
		case '\\':
			if i+1 >= n {
				return b.String(), i + 1
			}
			i++
			switch content[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b', 'f':
				// ignored
			case '(', ')', '\\':
				b.WriteByte(content[i])
			case '\n':
				// line continuation
			default:
				if content[i] >= '0' && content[i] <= '7' {
					v := int(content[i] - '0')
					for k := 0; k < 2 && i+1 < n && content[i+1] >= '0' && content[i+1] <= '7'; k++ {
						i++
						v = v*8 + int(content[i]-'0')
					}
					b.WriteByte(byte(v))
				} else {
					b.WriteByte(content[i])
				}
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), i
}

// readHexString decodes a PDF hex string starting at the '<' in
// content[i].
func readHexString(content []byte, i int) (string, int) {
	var b strings.Builder
	i++ // skip '<'
	n := len(content)
	var hi int = -1
	for ; i < n; i++ {
		c := content[i]
		if c == '>' {
			i++
			break
		}
		v := hexVal(c)
		if v < 0 {
			continue
		}
		if hi < 0 {
			hi = v
		} else {
			b.WriteByte(byte(hi<<4 | v))
			hi = -1
		}
	}
	if hi >= 0 {
		b.WriteByte(byte(hi << 4))
	}
	return b.String(), i
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" && len(out) > 0 && out[len(out)-1] == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
