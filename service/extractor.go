package service

import (
	"errors"
	"fmt"

	"github.com/gestorhq/gestor-be/types"
)

// Accepted upload media types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
)

var (
	// ErrUnsupportedFormat means the declared media type is not one of
	// the accepted document families.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrExtractionFailed covers malformed binaries, corrupt archives,
	// protected content and documents that yield no text at all.
	ErrExtractionFailed = errors.New("failed to extract text from document")
)

// TextExtractor converts one uploaded binary document to plain text.
type TextExtractor interface {
	Extract(doc types.UploadedDocument) (types.ExtractedText, error)
}

// ExtractorForMime selects the extractor for a declared media type.
func ExtractorForMime(mimeType string) (TextExtractor, error) {
	switch mimeType {
	case MimePDF:
		return NewPDFExtractor(), nil
	case MimeDOCX, MimeDOC:
		return NewWordExtractor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
}

func newExtractedText(text, sourceName string) types.ExtractedText {
	return types.ExtractedText{
		Content:    text,
		CharCount:  len(text),
		SourceName: sourceName,
	}
}
