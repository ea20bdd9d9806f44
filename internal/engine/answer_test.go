package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperqa-backend/internal/documents"
)

func sampleDoc() documents.Document {
	return documents.Document{
		ID:        1,
		FileName:  "paper.pdf",
		Title:     "Graph Methods",
		PageCount: 12,
		Sections:  6,
		Tables:    4,
		Figures:   5,
	}
}

func TestAnswerMetrics(t *testing.T) {
	q := "What is the accuracy?"
	resp := Answer(sampleDoc(), q, Classify(q))

	assert.Contains(t, resp.Answer, "89.3%")
	assert.Contains(t, resp.Answer, "Graph Methods")
	assert.Equal(t, 0.92, resp.Confidence)
	assert.Equal(t, []string{
		"paper.pdf, Table 2 (Results Summary)",
		"paper.pdf, Section 4.2 (Experimental Results)",
	}, resp.Sources)

	data, ok := resp.ExtractedData.(MetricsData)
	require.True(t, ok)
	assert.Equal(t, 0.893, data.Metrics.Accuracy)
	assert.Equal(t, 0.153, data.Improvements.F1Improvement)
}

func TestAnswerTablesUsesDocumentCount(t *testing.T) {
	q := "extract every table"
	resp := Answer(sampleDoc(), q, Classify(q))

	assert.Equal(t, 0.95, resp.Confidence)
	assert.Contains(t, resp.Answer, "I found 4 tables in Graph Methods")
	data, ok := resp.ExtractedData.(TableData)
	require.True(t, ok)
	assert.Equal(t, 4, data.TableCount)
	assert.Len(t, data.Tables, 3)
}

func TestAnswerTablesDefaultsCount(t *testing.T) {
	doc := sampleDoc()
	doc.Tables = 0
	resp := Answer(doc, "table please", CategoryExtraction)

	assert.Contains(t, resp.Answer, "I found 3 tables")
	assert.Equal(t, 3, resp.ExtractedData.(TableData).TableCount)
}

func TestAnswerMethodologyNeedsSummarization(t *testing.T) {
	resp := Answer(sampleDoc(), "summarize the methodology", CategorySummarization)
	assert.Equal(t, 0.88, resp.Confidence)
	assert.Contains(t, resp.Answer, "## Methodology Summary for Graph Methods")

	// Same words under another category fall through to the overview.
	resp = Answer(sampleDoc(), "summarize the methodology", CategoryLookup)
	assert.Equal(t, 0.75, resp.Confidence)
}

func TestAnswerConclusionsIgnoresCategory(t *testing.T) {
	resp := Answer(sampleDoc(), "What do they conclude?", CategoryAnalysis)
	assert.Equal(t, 0.90, resp.Confidence)
	assert.Equal(t, []string{"Conclusions", "Discussion", "Future Work"}, resp.RelevantSections)
}

func TestAnswerAbstractFallsBackToFileNameAndWords(t *testing.T) {
	doc := documents.Document{FileName: "raw.pdf", PageCount: 3}
	resp := Answer(doc, "show the abstract", Classify("show the abstract"))

	assert.Equal(t, 0.85, resp.Confidence)
	assert.Contains(t, resp.Answer, "## Abstract Summary: raw.pdf")
	assert.Contains(t, resp.Answer, "This research paper presents a comprehensive investigation")
	assert.Contains(t, resp.Answer, "- **Sections:** Multiple")
	assert.Contains(t, resp.Answer, "- **References:** Extensive bibliography")
}

func TestAnswerAbstractUsesStoredAbstract(t *testing.T) {
	doc := sampleDoc()
	doc.Abstract = "We study graphs."
	resp := Answer(doc, "abstract?", CategoryLookup)

	assert.Contains(t, resp.Answer, "We study graphs.")
	assert.NotContains(t, resp.Answer, "comprehensive investigation")
}

func TestAnswerOverviewQuotesQuestion(t *testing.T) {
	doc := documents.Document{FileName: "raw.pdf", PageCount: 7}
	resp := Answer(doc, "Who funded this?", CategoryLookup)

	assert.Equal(t, 0.75, resp.Confidence)
	assert.Contains(t, resp.Answer, `regarding "Who funded this?"`)
	assert.Contains(t, resp.Answer, "This 7-page research paper")
	assert.Contains(t, resp.Answer, "multiple main sections, several tables, and multiple figures")
	assert.Nil(t, resp.ExtractedData)
}
