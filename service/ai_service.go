package service

import (
	"context"

	"github.com/gestorhq/gestor-be/types"
)

// AIService turns extracted document text into a schema-valid
// ExtractionResult. Implementations never fail: any model-side problem
// degrades to the deterministic fallback, so callers always get a
// usable result.
type AIService interface {
	Analyze(ctx context.Context, text, fileName string) types.ExtractionResult

	// Enabled reports whether a model credential was configured at
	// startup; false means every result comes from the fallback.
	Enabled() bool
}
