package documents

import (
	"context"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	statsMonths     = 6
	statsTopAuthors = 5
)

// Stats summarizes the current library.
type Stats struct {
	TotalDocuments int
	TotalPages     int
	TotalBytes     int64
	TotalTables    int
	TotalFigures   int
	TotalSections  int
	// ProcessingRate is the percentage of documents marked vectorized.
	ProcessingRate float64
	ByMonth        []MonthCount
	TopAuthors     []AuthorCount
}

// HumanSize renders TotalBytes for display.
func (s Stats) HumanSize() string {
	return humanize.IBytes(uint64(max(s.TotalBytes, 0)))
}

// MonthCount is the number of documents uploaded in a calendar month.
type MonthCount struct {
	Month string
	Count int
}

// AuthorCount is the number of documents listing an author.
type AuthorCount struct {
	Author    string
	Documents int
}

// Stats computes library analytics over the current documents.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(docs), nil
}

func computeStats(docs []Document) Stats {
	out := Stats{
		TotalDocuments: len(docs),
		ByMonth:        []MonthCount{},
		TopAuthors:     []AuthorCount{},
	}
	if len(docs) == 0 {
		return out
	}

	processed := 0
	months := map[time.Time]int{}
	authors := map[string]int{}
	for _, doc := range docs {
		out.TotalPages += doc.PageCount
		out.TotalBytes += doc.SizeBytes
		out.TotalTables += doc.Tables
		out.TotalFigures += doc.Figures
		out.TotalSections += doc.Sections
		if doc.Vectorized {
			processed++
		}
		t := doc.UploadedAt.UTC()
		months[time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)]++
		for _, author := range doc.Authors {
			authors[author]++
		}
	}
	out.ProcessingRate = float64(processed) / float64(len(docs)) * 100

	keys := make([]time.Time, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	if len(keys) > statsMonths {
		keys = keys[len(keys)-statsMonths:]
	}
	for _, k := range keys {
		out.ByMonth = append(out.ByMonth, MonthCount{Month: k.Format("Jan 2006"), Count: months[k]})
	}

	for name, n := range authors {
		out.TopAuthors = append(out.TopAuthors, AuthorCount{Author: name, Documents: n})
	}
	sort.Slice(out.TopAuthors, func(i, j int) bool {
		a, b := out.TopAuthors[i], out.TopAuthors[j]
		if a.Documents != b.Documents {
			return a.Documents > b.Documents
		}
		return a.Author < b.Author
	})
	if len(out.TopAuthors) > statsTopAuthors {
		out.TopAuthors = out.TopAuthors[:statsTopAuthors]
	}
	return out
}
