package printing

// Artifact is the output of a renderer
type Artifact struct {
	Format    Format
	Data      []byte
	PageCount int
	// RecordCount is the number of labels drawn
	RecordCount int
}

// ContentType returns the MIME type of the artifact
func (a *Artifact) ContentType() string {
	return a.Format.ContentType()
}

// Size returns the artifact size in bytes
func (a *Artifact) Size() int {
	return len(a.Data)
}
