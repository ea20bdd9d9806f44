package documents

import "time"

// StatusCompleted is the only processing status a stored document reaches.
const StatusCompleted = "completed"

// Document is the metadata record of an uploaded or imported paper.
// Records are never mutated after they are added to a Repo.
type Document struct {
	ID               int64
	FileName         string
	Title            string
	Authors          []string
	Abstract         string
	Keywords         []string
	UploadedAt       time.Time
	PageCount        int
	SizeBytes        int64
	MimeType         string
	Vectorized       bool
	ProcessingStatus string
	// Zero counts mean "unknown" and render as words in answers.
	Sections   int
	Tables     int
	Figures    int
	Equations  int
	References int
	StorageKey string
}

// DisplayTitle returns the extracted title, falling back to the file name.
func (d Document) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.FileName
}
