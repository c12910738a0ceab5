package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gestorhq/gestor-be/service"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

// maxUploadSize caps a single document upload; it is the only admission
// control on this endpoint.
const maxUploadSize = 10 << 20

// DocumentHandler is the extraction endpoint: validate the upload,
// extract text, run the analysis, wrap the result in an envelope. It
// performs no persistence.
type DocumentHandler struct {
	ai         service.AIService
	production bool
}

func NewDocumentHandler(ai service.AIService, production bool) *DocumentHandler {
	return &DocumentHandler{
		ai:         ai,
		production: production,
	}
}

func (h *DocumentHandler) HandleProcessDocument(c *gin.Context) {
	// Boundary guard: anything unexpected becomes a 500 with a generic
	// message; details leave the process only outside production.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("document processing panic: %v", r)
			res := types.DataResponse{
				Success: false,
				Error:   "Internal server error",
			}
			if !h.production {
				res.Details = fmt.Sprint(r)
			}
			c.JSON(http.StatusInternalServerError, res)
		}
	}()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "No file uploaded",
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "File too large",
		})
		return
	}

	teamID := c.PostForm("teamId")
	userID := c.PostForm("userId")
	mimeType := header.Header.Get("Content-Type")

	extractor, err := service.ExtractorForMime(mimeType)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Unsupported file type",
		})
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   "Failed to read uploaded file",
		})
		return
	}
	if int64(len(content)) > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "File too large",
		})
		return
	}

	text, err := extractor.Extract(types.UploadedDocument{
		Content:  content,
		MimeType: mimeType,
		FileName: header.Filename,
		Size:     int64(len(content)),
	})
	if err != nil {
		if errors.Is(err, service.ErrExtractionFailed) {
			res := types.DataResponse{
				Success: false,
				Error:   "Could not extract text from the document",
			}
			if !h.production {
				res.Details = err.Error()
			}
			c.JSON(http.StatusBadRequest, res)
			return
		}
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Unsupported file type",
		})
		return
	}

	log.Printf("processing %s (%d bytes, %d chars) for team %s", header.Filename, len(content), text.CharCount, teamID)

	result := h.ai.Analyze(c.Request.Context(), text.Content, header.Filename)

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data: types.DocumentAnalysis{
			ExtractionResult: result,
			Metadata: types.ExtractionMetadata{
				FileName:    header.Filename,
				FileSize:    int64(len(content)),
				MimeType:    mimeType,
				TextLength:  text.CharCount,
				ProcessedAt: time.Now().UTC().Format(time.RFC3339),
				TeamID:      teamID,
				UserID:      userID,
			},
		},
	})
}

// HandleStatus is the pipeline health check.
func (h *DocumentHandler) HandleStatus(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.StatusResponse{
			Status:           "OK",
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			OpenAIConfigured: h.ai.Enabled(),
			Env:              env,
		})
	}
}
