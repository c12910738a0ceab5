package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gestorhq/gestor-be/types"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Proposta de projeto</w:t></w:r></w:p>
    <w:p><w:r><w:t>Primeira parte</w:t></w:r><w:r><w:t xml:space="preserve"> e segunda parte</w:t></w:r></w:p>
    <w:p><w:r><w:t>Coluna A</w:t><w:tab/><w:t>Coluna B</w:t></w:r></w:p>
    <w:p><w:r><w:t>Linha um</w:t><w:br/><w:t>linha dois</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestWordExtractDocx(t *testing.T) {
	content := buildDocx(t, docxBody)
	e := NewWordExtractor()

	got, err := e.Extract(types.UploadedDocument{
		Content:  content,
		MimeType: MimeDOCX,
		FileName: "proposta.docx",
		Size:     int64(len(content)),
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := "Proposta de projeto\nPrimeira parte e segunda parte\nColuna A\tColuna B\nLinha um\nlinha dois"
	if got.Content != want {
		t.Errorf("extracted text = %q, want %q", got.Content, want)
	}
	if got.CharCount != len(want) {
		t.Errorf("char count = %d, want %d", got.CharCount, len(want))
	}
	if got.SourceName != "proposta.docx" {
		t.Errorf("source name = %q", got.SourceName)
	}
}

func TestWordExtractEmptyDocument(t *testing.T) {
	empty := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body></w:body></w:document>`
	e := NewWordExtractor()
	_, err := e.Extract(types.UploadedDocument{Content: buildDocx(t, empty), FileName: "vazio.docx"})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestWordExtractCorruptArchive(t *testing.T) {
	e := NewWordExtractor()
	_, err := e.Extract(types.UploadedDocument{Content: []byte("this is not a zip"), FileName: "x.docx"})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestWordExtractMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<styles/>"))
	zw.Close()

	e := NewWordExtractor()
	_, err := e.Extract(types.UploadedDocument{Content: buf.Bytes(), FileName: "x.docx"})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestWordExtractTruncatedOLE(t *testing.T) {
	// Valid OLE signature, nothing else.
	content := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 16)...)
	e := NewWordExtractor()
	_, err := e.Extract(types.UploadedDocument{Content: content, FileName: "old.doc"})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestCleanWordText(t *testing.T) {
	in := "Primeiro\rSegundo\x0bTerceiro\x13FIELD\x14result\x15fim"
	got := cleanWordText(in)
	want := "Primeiro\nSegundo\nTerceiroFIELDresultfim"
	if got != want {
		t.Errorf("cleanWordText = %q, want %q", got, want)
	}
}

func TestExtractorForMime(t *testing.T) {
	if _, err := ExtractorForMime(MimePDF); err != nil {
		t.Errorf("pdf: %v", err)
	}
	if _, err := ExtractorForMime(MimeDOCX); err != nil {
		t.Errorf("docx: %v", err)
	}
	if _, err := ExtractorForMime(MimeDOC); err != nil {
		t.Errorf("doc: %v", err)
	}
	_, err := ExtractorForMime("text/plain")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "text/plain") {
		t.Errorf("error should name the rejected type: %v", err)
	}
}
