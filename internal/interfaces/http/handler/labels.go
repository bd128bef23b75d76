package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/labelprint/backend/internal/application/labels"
	"github.com/labelprint/backend/internal/domain/printing"
	"go.uber.org/zap"
)

// Response headers carrying the generation counts
const (
	HeaderRecordCount = "X-Record-Count"
	HeaderPageCount   = "X-Page-Count"
)

// LabelGenerator renders the current customer file in a format
type LabelGenerator interface {
	Generate(ctx context.Context, format printing.Format) (*labels.GenerateResult, error)
}

// LabelHandler streams rendered label documents
type LabelHandler struct {
	BaseHandler
	generator LabelGenerator
	logger    *zap.Logger
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(generator LabelGenerator, logger *zap.Logger) *LabelHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LabelHandler{
		generator: generator,
		logger:    logger,
	}
}

// Download returns a handler that renders every stored record in format and
// writes the artifact inline. An empty file yields a document with no pages.
func (h *LabelHandler) Download(format printing.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := requestLogger(c, h.logger)
		result, err := h.generator.Generate(c.Request.Context(), format)
		if err != nil {
			log.Error("failed to generate labels",
				zap.String("format", format.String()),
				zap.Error(err))
			h.HandleError(c, err)
			return
		}
		if result.Empty() {
			log.Warn("no customers found",
				zap.String("format", format.String()))
		}

		artifact := result.Artifact
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "customer_labels"+format.Extension()))
		c.Header(HeaderRecordCount, strconv.Itoa(result.RecordCount))
		c.Header(HeaderPageCount, strconv.Itoa(result.PageCount))
		c.Data(http.StatusOK, artifact.ContentType(), artifact.Data)
	}
}
