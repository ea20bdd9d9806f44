package documents

import (
	"strconv"
	"time"
)

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID               string    `json:"id"`
	FileName         string    `json:"filename"`
	Title            string    `json:"title,omitempty"`
	Authors          []string  `json:"authors,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
	PageCount        int       `json:"pageCount"`
	FileSize         int64     `json:"fileSize"`
	Vectorized       bool      `json:"vectorized"`
	Sections         int       `json:"sections,omitempty"`
	Tables           int       `json:"tables,omitempty"`
	Figures          int       `json:"figures,omitempty"`
	Equations        int       `json:"equations,omitempty"`
	References       int       `json:"references,omitempty"`
	Abstract         string    `json:"abstract,omitempty"`
	Keywords         []string  `json:"keywords,omitempty"`
	ProcessingStatus string    `json:"processingStatus,omitempty"`
}

// ToResponse converts a Document for JSON output.
func ToResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:               strconv.FormatInt(doc.ID, 10),
		FileName:         doc.FileName,
		Title:            doc.Title,
		Authors:          doc.Authors,
		UploadedAt:       doc.UploadedAt,
		PageCount:        doc.PageCount,
		FileSize:         doc.SizeBytes,
		Vectorized:       doc.Vectorized,
		Sections:         doc.Sections,
		Tables:           doc.Tables,
		Figures:          doc.Figures,
		Equations:        doc.Equations,
		References:       doc.References,
		Abstract:         doc.Abstract,
		Keywords:         doc.Keywords,
		ProcessingStatus: doc.ProcessingStatus,
	}
}

func toResponses(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, ToResponse(doc))
	}
	return out
}

type statsResponse struct {
	TotalDocuments int              `json:"totalDocuments"`
	TotalPages     int              `json:"totalPages"`
	TotalBytes     int64            `json:"totalBytes"`
	TotalSize      string           `json:"totalSize"`
	TotalTables    int              `json:"totalTables"`
	TotalFigures   int              `json:"totalFigures"`
	TotalSections  int              `json:"totalSections"`
	ProcessingRate float64          `json:"processingRate"`
	ByMonth        []monthResponse  `json:"byMonth"`
	TopAuthors     []authorResponse `json:"topAuthors"`
}

type monthResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type authorResponse struct {
	Author    string `json:"author"`
	Documents int    `json:"documents"`
}

func toStatsResponse(s Stats) statsResponse {
	out := statsResponse{
		TotalDocuments: s.TotalDocuments,
		TotalPages:     s.TotalPages,
		TotalBytes:     s.TotalBytes,
		TotalSize:      s.HumanSize(),
		TotalTables:    s.TotalTables,
		TotalFigures:   s.TotalFigures,
		TotalSections:  s.TotalSections,
		ProcessingRate: s.ProcessingRate,
		ByMonth:        make([]monthResponse, 0, len(s.ByMonth)),
		TopAuthors:     make([]authorResponse, 0, len(s.TopAuthors)),
	}
	for _, m := range s.ByMonth {
		out.ByMonth = append(out.ByMonth, monthResponse{Month: m.Month, Count: m.Count})
	}
	for _, a := range s.TopAuthors {
		out.TopAuthors = append(out.TopAuthors, authorResponse{Author: a.Author, Documents: a.Documents})
	}
	return out
}

// ParseID parses a document id path parameter.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
