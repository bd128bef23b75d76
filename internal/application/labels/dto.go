package labels

import (
	"time"

	"github.com/labelprint/backend/internal/domain/printing"
)

// SubmitRecordInput is one customer entered through the web form
type SubmitRecordInput struct {
	FullName   string `form:"full_name" json:"full_name"`
	Phone      string `form:"phone" json:"phone"`
	Address    string `form:"address" json:"address"`
	PostalCode string `form:"postal_code" json:"postal_code"`
}

// GenerateResult is a rendered artifact with its counts
type GenerateResult struct {
	Artifact    *printing.Artifact
	Format      printing.Format
	RecordCount int
	PageCount   int
}

// Empty reports whether no customer was rendered
func (r *GenerateResult) Empty() bool {
	return r.RecordCount == 0
}

// ExportResult describes a generated artifact after it was saved
type ExportResult struct {
	GenerateResult
	Location string
	Size     int64
	SavedAt  time.Time
}
