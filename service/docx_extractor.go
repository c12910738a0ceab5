package service

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/gestorhq/gestor-be/types"
)

// WordExtractor handles both word-processing families: DOCX (OPC zip
// archive, word/document.xml) and legacy DOC (OLE compound file,
// WordDocument stream). Formatting, images and embedded objects are
// discarded.
type WordExtractor struct{}

func NewWordExtractor() *WordExtractor {
	return &WordExtractor{}
}

var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

func (e *WordExtractor) Extract(doc types.UploadedDocument) (types.ExtractedText, error) {
	var (
		text string
		err  error
	)
	if bytes.HasPrefix(doc.Content, oleSignature) {
		text, err = extractLegacyDoc(doc.Content)
	} else {
		text, err = extractDocx(doc.Content)
	}
	if err != nil {
		return types.ExtractedText{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	text = collapseBlankLines(text)
	if text == "" {
		return types.ExtractedText{}, fmt.Errorf("%w: document contains no text", ErrExtractionFailed)
	}
	return newExtractedText(text, doc.FileName), nil
}

// extractDocx walks word/document.xml and concatenates the w:t runs,
// turning paragraphs into newlines and w:tab/w:br into their characters.
func extractDocx(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open word/document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}
	defer docXML.Close()

	var (
		b      strings.Builder
		inText bool
	)
	decoder := xml.NewDecoder(docXML)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse word/document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

// Legacy .doc support: a deliberately small OLE compound-file reader
// that locates the WordDocument stream and returns the FIB's contiguous
// text range. Complex (incrementally saved) and encrypted files are
// rejected.

const (
	oleHeaderSize   = 512
	oleDirEntrySize = 128
	oleEndOfChain   = 0xFFFFFFFE
	oleFreeSector   = 0xFFFFFFFF
)

func extractLegacyDoc(content []byte) (string, error) {
	stream, err := oleStream(content, "WordDocument")
	if err != nil {
		return "", err
	}
	if len(stream) < 32 {
		return "", fmt.Errorf("WordDocument stream truncated")
	}

	if ident := binary.LittleEndian.Uint16(stream[0:2]); ident != 0xA5EC && ident != 0xA5DC {
		return "", fmt.Errorf("not a Word binary file (wIdent=%#x)", ident)
	}
	flags := binary.LittleEndian.Uint16(stream[10:12])
	if flags&0x0100 != 0 {
		return "", fmt.Errorf("document is password protected")
	}
	if flags&0x0004 != 0 {
		return "", fmt.Errorf("complex fast-saved document not supported")
	}
	fcMin := binary.LittleEndian.Uint32(stream[24:28])
	fcMac := binary.LittleEndian.Uint32(stream[28:32])
	if fcMac <= fcMin || int(fcMac) > len(stream) {
		return "", fmt.Errorf("invalid text range %d..%d", fcMin, fcMac)
	}

	raw := stream[fcMin:fcMac]
	var text string
	if flags&0x1000 != 0 {
		// fExtChar: UTF-16LE text
		u := make([]uint16, 0, len(raw)/2)
		for i := 0; i+1 < len(raw); i += 2 {
			u = append(u, binary.LittleEndian.Uint16(raw[i:i+2]))
		}
		text = string(utf16.Decode(u))
	} else {
		// 8-bit CP-1252 text, approximated as Latin-1
		runes := make([]rune, len(raw))
		for i, c := range raw {
			runes[i] = rune(c)
		}
		text = string(runes)
	}
	return cleanWordText(text), nil
}

// cleanWordText maps Word's control characters to plain text equivalents
// and drops field and object markers.
func cleanWordText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\r', 0x0B, 0x07: // paragraph, soft break, cell mark
			b.WriteByte('\n')
		case '\t':
			b.WriteByte('\t')
		case 0x13, 0x14, 0x15, 0x01, 0x08: // field and object markers
		default:
			if r >= 0x20 || r == '\n' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// oleStream reads one top-level stream out of an OLE compound file.
// Streams held in the mini stream (below the 4096-byte cutoff) are not
// supported; WordDocument is always larger in practice.
func oleStream(content []byte, name string) ([]byte, error) {
	if len(content) < oleHeaderSize {
		return nil, fmt.Errorf("OLE file truncated")
	}
	sectorShift := binary.LittleEndian.Uint16(content[30:32])
	if sectorShift < 7 || sectorShift > 12 {
		return nil, fmt.Errorf("invalid OLE sector size")
	}
	sectorSize := 1 << sectorShift
	numFATSectors := binary.LittleEndian.Uint32(content[44:48])
	firstDirSector := binary.LittleEndian.Uint32(content[48:52])
	miniCutoff := binary.LittleEndian.Uint32(content[56:60])

	sectorAt := func(id uint32) ([]byte, error) {
		off := oleHeaderSize + int(id)*sectorSize
		if off+sectorSize > len(content) {
			return nil, fmt.Errorf("sector %d out of range", id)
		}
		return content[off : off+sectorSize], nil
	}

	// FAT from the header DIF array; 109 entries cover files up to ~6.8 MB
	// at 512-byte sectors, which exceeds the upload cap for the text-bearing
	// part of any real-world .doc.
	var fat []uint32
	for i := 0; i < 109 && uint32(i) < numFATSectors; i++ {
		id := binary.LittleEndian.Uint32(content[76+i*4 : 80+i*4])
		if id == oleFreeSector || id == oleEndOfChain {
			break
		}
		sec, err := sectorAt(id)
		if err != nil {
			return nil, err
		}
		for j := 0; j+4 <= len(sec); j += 4 {
			fat = append(fat, binary.LittleEndian.Uint32(sec[j:j+4]))
		}
	}
	if len(fat) == 0 {
		return nil, fmt.Errorf("empty OLE FAT")
	}

	readChain := func(start uint32) ([]byte, error) {
		var out []byte
		for id, hops := start, 0; id != oleEndOfChain; hops++ {
			if hops > len(fat) {
				return nil, fmt.Errorf("cyclic OLE sector chain")
			}
			sec, err := sectorAt(id)
			if err != nil {
				return nil, err
			}
			out = append(out, sec...)
			if int(id) >= len(fat) {
				return nil, fmt.Errorf("sector %d beyond FAT", id)
			}
			id = fat[id]
		}
		return out, nil
	}

	dir, err := readChain(firstDirSector)
	if err != nil {
		return nil, err
	}
	for off := 0; off+oleDirEntrySize <= len(dir); off += oleDirEntrySize {
		entry := dir[off : off+oleDirEntrySize]
		nameLen := int(binary.LittleEndian.Uint16(entry[64:66]))
		if nameLen < 2 || nameLen > 64 {
			continue
		}
		u := make([]uint16, 0, nameLen/2-1)
		for i := 0; i+1 < nameLen-1; i += 2 {
			u = append(u, binary.LittleEndian.Uint16(entry[i:i+2]))
		}
		if string(utf16.Decode(u)) != name {
			continue
		}
		start := binary.LittleEndian.Uint32(entry[116:120])
		size := binary.LittleEndian.Uint32(entry[120:124])
		if size < miniCutoff {
			return nil, fmt.Errorf("stream %s lives in the mini stream", name)
		}
		data, err := readChain(start)
		if err != nil {
			return nil, err
		}
		if int(size) > len(data) {
			return nil, fmt.Errorf("stream %s truncated", name)
		}
		return data[:size], nil
	}
	return nil, fmt.Errorf("stream %s not found", name)
}
