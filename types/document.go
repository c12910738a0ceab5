package types

// UploadedDocument is the transient in-memory form of one uploaded file.
// It lives for the duration of a single extraction call and is never
// persisted.
type UploadedDocument struct {
	Content  []byte
	MimeType string
	FileName string
	Size     int64
}

// ExtractedText is the plain text derived from an UploadedDocument.
// Content is non-empty on success; extraction fails otherwise.
type ExtractedText struct {
	Content    string
	CharCount  int
	SourceName string // original file name, for logging only
}
