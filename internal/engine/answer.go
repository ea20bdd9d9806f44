package engine

import (
	"strings"

	"paperqa-backend/internal/documents"
)

// Response is a templated answer to a question about a document.
type Response struct {
	Answer           string
	Sources          []string
	Confidence       float64
	RelevantSections []string
	// ExtractedData is nil, MetricsData or TableData.
	ExtractedData any
}

// MetricsData is the structured payload of the performance-metrics answer.
type MetricsData struct {
	Metrics      Metrics      `json:"metrics"`
	Improvements Improvements `json:"improvements"`
}

type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	F1Score   float64 `json:"f1Score"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
}

type Improvements struct {
	AccuracyImprovement float64 `json:"accuracyImprovement"`
	F1Improvement       float64 `json:"f1Improvement"`
}

// TableData is the structured payload of the table-extraction answer.
type TableData struct {
	TableCount int      `json:"tableCount"`
	Tables     []string `json:"tables"`
}

const defaultTableCount = 3

var reportedMetrics = MetricsData{
	Metrics:      Metrics{Accuracy: 0.893, F1Score: 0.876, Precision: 0.889, Recall: 0.864},
	Improvements: Improvements{AccuracyImprovement: 0.127, F1Improvement: 0.153},
}

var reportedTables = []string{"Performance Comparison", "Dataset Statistics", "Ablation Study Results"}

type answerData struct {
	Title      string
	Question   string
	Abstract   string
	Pages      int
	Sections   int
	Tables     int
	Figures    int
	References int
	TableCount int
}

type answerRule struct {
	name  string
	match func(q string, cat Category) bool
	build func(doc documents.Document, data answerData) Response
}

// Evaluated in order; the first matching rule produces the answer. The last
// rule always matches.
var answerRules = []answerRule{
	{
		name: "metrics",
		match: func(q string, cat Category) bool {
			return cat == CategoryExtraction && containsAny(q, "accuracy", "f1", "results")
		},
		build: func(doc documents.Document, data answerData) Response {
			return Response{
				Answer: render("metrics", data),
				Sources: []string{
					doc.FileName + ", Table 2 (Results Summary)",
					doc.FileName + ", Section 4.2 (Experimental Results)",
				},
				Confidence:       0.92,
				RelevantSections: []string{"Results", "Experimental Evaluation", "Performance Analysis"},
				ExtractedData:    reportedMetrics,
			}
		},
	},
	{
		name: "tables",
		match: func(q string, cat Category) bool {
			return cat == CategoryExtraction && strings.Contains(q, "table")
		},
		build: func(doc documents.Document, data answerData) Response {
			return Response{
				Answer: render("tables", data),
				Sources: []string{
					doc.FileName + ", Table 1",
					doc.FileName + ", Table 2",
					doc.FileName + ", Table 3",
				},
				Confidence:       0.95,
				RelevantSections: []string{"Results", "Experimental Setup", "Ablation Study"},
				ExtractedData: TableData{
					TableCount: data.TableCount,
					Tables:     append([]string(nil), reportedTables...),
				},
			}
		},
	},
	{
		name: "methodology",
		match: func(q string, cat Category) bool {
			return cat == CategorySummarization && strings.Contains(q, "methodology")
		},
		build: func(doc documents.Document, data answerData) Response {
			return Response{
				Answer: render("methodology", data),
				Sources: []string{
					doc.FileName + ", Section 3 (Methodology)",
					doc.FileName + ", Section 3.1-3.4",
				},
				Confidence:       0.88,
				RelevantSections: []string{"Methodology", "Experimental Setup", "Implementation"},
			}
		},
	},
	{
		name: "conclusions",
		match: func(q string, _ Category) bool {
			return containsAny(q, "conclusion", "conclude")
		},
		build: func(doc documents.Document, data answerData) Response {
			return Response{
				Answer: render("conclusions", data),
				Sources: []string{
					doc.FileName + ", Section 6 (Conclusions)",
					doc.FileName + ", Section 7 (Future Work)",
				},
				Confidence:       0.90,
				RelevantSections: []string{"Conclusions", "Discussion", "Future Work"},
			}
		},
	},
	{
		name: "abstract",
		match: func(q string, _ Category) bool {
			return containsAny(q, "abstract", "summary")
		},
		build: func(doc documents.Document, data answerData) Response {
			return Response{
				Answer: render("abstract", data),
				Sources: []string{
					doc.FileName + ", Abstract",
					doc.FileName + ", Introduction",
				},
				Confidence:       0.85,
				RelevantSections: []string{"Abstract", "Introduction", "Overview"},
			}
		},
	},
	{
		name:  "overview",
		match: func(string, Category) bool { return true },
		build: func(doc documents.Document, data answerData) Response {
			return Response{
				Answer: render("overview", data),
				Sources: []string{
					doc.FileName + ", Multiple sections",
					doc.FileName + ", Overview",
				},
				Confidence:       0.75,
				RelevantSections: []string{"General Content", "Multiple Sections"},
			}
		},
	},
}

// Answer selects and fills the canned answer for question. The category is
// taken as given, so callers normally pass Classify(question).
func Answer(doc documents.Document, question string, cat Category) Response {
	q := strings.ToLower(question)
	data := answerData{
		Title:      doc.DisplayTitle(),
		Question:   question,
		Abstract:   doc.Abstract,
		Pages:      doc.PageCount,
		Sections:   doc.Sections,
		Tables:     doc.Tables,
		Figures:    doc.Figures,
		References: doc.References,
		TableCount: doc.Tables,
	}
	if data.TableCount <= 0 {
		data.TableCount = defaultTableCount
	}
	for _, rule := range answerRules {
		if rule.match(q, cat) {
			return rule.build(doc, data)
		}
	}
	// Unreachable: the overview rule always matches.
	return Response{}
}
