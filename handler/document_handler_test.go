package handler

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestorhq/gestor-be/service"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAIService struct {
	result   types.ExtractionResult
	enabled  bool
	lastText string
	lastFile string
}

func (s *stubAIService) Analyze(ctx context.Context, text, fileName string) types.ExtractionResult {
	s.lastText = text
	s.lastFile = fileName
	return s.result
}

func (s *stubAIService) Enabled() bool { return s.enabled }

func newProcessRouter(ai service.AIService, production bool) *gin.Engine {
	router := gin.New()
	h := NewDocumentHandler(ai, production)
	router.POST("/api/v1/documents/process", h.HandleProcessDocument)
	router.GET("/api/v1/status", h.HandleStatus("test"))
	return router
}

func docxUpload(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(xml)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, fileName, mimeType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="file"; filename="` + fileName + `"`}
	hdr["Content-Type"] = []string{mimeType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestProcessDocumentMissingFile(t *testing.T) {
	router := newProcessRouter(&stubAIService{}, false)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("teamId", "t1")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp types.DataResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Error != "No file uploaded" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestProcessDocumentUnsupportedType(t *testing.T) {
	router := newProcessRouter(&stubAIService{}, false)

	body, contentType := multipartUpload(t, "notes.txt", "text/plain", []byte("plain text"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp types.DataResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Unsupported file type" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestProcessDocumentCorruptFile(t *testing.T) {
	router := newProcessRouter(&stubAIService{}, false)

	body, contentType := multipartUpload(t, "broken.docx", service.MimeDOCX, []byte("garbage"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp types.DataResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Could not extract text from the document" {
		t.Errorf("error = %q", resp.Error)
	}
	if resp.Details == "" {
		t.Error("outside production the envelope should carry details")
	}
}

func TestProcessDocumentCorruptFileProductionHidesDetails(t *testing.T) {
	router := newProcessRouter(&stubAIService{}, true)

	body, contentType := multipartUpload(t, "broken.docx", service.MimeDOCX, []byte("garbage"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp types.DataResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Details != "" {
		t.Errorf("production response leaked details: %q", resp.Details)
	}
}

func TestProcessDocumentHappyPath(t *testing.T) {
	ai := &stubAIService{
		enabled: true,
		result: types.ExtractionResult{
			Projects:  []types.ExtractedProject{{Name: "Sistema interno", Budget: 150000}},
			Tasks:     []types.ExtractedTask{},
			Timeline:  []types.ExtractedEvent{},
			Insights:  types.Insights{Summary: "ok"},
			AIPowered: true,
		},
	}
	router := newProcessRouter(ai, false)

	content := docxUpload(t, "Proposta de projeto com orçamento")
	body, contentType := multipartUpload(t, "proposta.docx", service.MimeDOCX, content, map[string]string{
		"teamId": "team-42",
		"userId": "user-7",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool                   `json:"success"`
		Data    types.DocumentAnalysis `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success {
		t.Error("success flag missing")
	}
	if len(envelope.Data.Projects) != 1 || envelope.Data.Projects[0].Name != "Sistema interno" {
		t.Errorf("unexpected projects: %+v", envelope.Data.Projects)
	}
	if !envelope.Data.AIPowered {
		t.Error("ai_powered flag lost in the envelope")
	}

	meta := envelope.Data.Metadata
	if meta.FileName != "proposta.docx" {
		t.Errorf("metadata file name = %q", meta.FileName)
	}
	if meta.MimeType != service.MimeDOCX {
		t.Errorf("metadata mime = %q", meta.MimeType)
	}
	if meta.TeamID != "team-42" || meta.UserID != "user-7" {
		t.Errorf("metadata attribution: team=%q user=%q", meta.TeamID, meta.UserID)
	}
	if meta.FileSize != int64(len(content)) {
		t.Errorf("metadata size = %d, want %d", meta.FileSize, len(content))
	}
	if meta.TextLength == 0 {
		t.Error("metadata text length should reflect extracted chars")
	}
	if meta.ProcessedAt == "" {
		t.Error("metadata missing processedAt")
	}

	if ai.lastFile != "proposta.docx" {
		t.Errorf("analysis called with file %q", ai.lastFile)
	}
	if ai.lastText == "" {
		t.Error("analysis called with empty text")
	}
}

func TestProcessDocumentTooLarge(t *testing.T) {
	router := newProcessRouter(&stubAIService{}, false)

	big := make([]byte, maxUploadSize+1)
	body, contentType := multipartUpload(t, "huge.pdf", service.MimePDF, big, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp types.DataResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "File too large" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestStatusEndpoint(t *testing.T) {
	router := newProcessRouter(&stubAIService{enabled: true}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp types.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("status = %q", resp.Status)
	}
	if !resp.OpenAIConfigured {
		t.Error("openai flag should mirror the service")
	}
	if resp.Env != "test" {
		t.Errorf("env = %q", resp.Env)
	}
	if resp.Timestamp == "" {
		t.Error("timestamp missing")
	}
}
