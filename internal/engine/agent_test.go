package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentFunctionCalls(t *testing.T) {
	resp := Agent("7", "Show me the Function CALL trace")

	assert.Equal(t, []string{"searchDocument", "extractTables", "analyzeSections"}, resp.Metadata.FunctionCalls)
	assert.Equal(t, 0.94, resp.Metadata.Confidence)
	assert.Equal(t, 2340, resp.Metadata.ProcessingTime)
	assert.Contains(t, resp.Answer, `searchDocument(documentId: "7"`)
}

func TestAgentArxivSearch(t *testing.T) {
	resp := Agent("7", "search arxiv for transformers")

	assert.Equal(t, []string{"searchArxiv"}, resp.Metadata.FunctionCalls)
	assert.Equal(t, 3, resp.Metadata.ResultsFound)
	assert.Zero(t, resp.Metadata.Confidence)
	assert.Contains(t, resp.Answer, `searchArxiv(query: "search arxiv for transformers"`)
}

func TestAgentDefault(t *testing.T) {
	resp := Agent("7", "arxiv please")

	assert.Len(t, resp.Metadata.FunctionCalls, 4)
	assert.Equal(t, 0.88, resp.Metadata.Confidence)
	assert.Equal(t, 1650, resp.Metadata.ProcessingTime)
}
