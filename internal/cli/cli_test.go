package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperqa-backend/internal/arxiv"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "Compare the baselines")
	require.NoError(t, err)
	assert.Contains(t, out, "analysis")
}

func TestClassifyCmdRequiresExactlyOneArg(t *testing.T) {
	_, err := run(t, "classify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmdJSON(t *testing.T) {
	out, err := run(t, "--json", "ask", "what is the f1 score?", "--title", "Sparse Models")
	require.NoError(t, err)

	var msg struct {
		Role     string   `json:"role"`
		Content  string   `json:"content"`
		Sources  []string `json:"sources"`
		Metadata struct {
			Confidence float64 `json:"confidence"`
			QueryType  string  `json:"queryType"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &msg))
	assert.Equal(t, "assistant", msg.Role)
	assert.Contains(t, msg.Content, "Sparse Models")
	assert.Equal(t, 0.92, msg.Metadata.Confidence)
	assert.Equal(t, "extraction", msg.Metadata.QueryType)
	assert.Equal(t, "paper.pdf, Table 2 (Results Summary)", msg.Sources[0])
}

func TestAskCmdText(t *testing.T) {
	out, err := run(t, "ask", "who wrote it?", "--file", "x.pdf", "--pages", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "This 4-page research paper")
	assert.Contains(t, out, "x.pdf, Overview")
}

func TestSearchCmdJSONIsSeeded(t *testing.T) {
	first, err := run(t, "--json", "--seed", "9", "search", "quantum")
	require.NoError(t, err)
	second, err := run(t, "--json", "--seed", "9", "search", "quantum")
	require.NoError(t, err)

	var a, b []struct {
		ID              string `json:"id"`
		PrimaryCategory string `json:"primaryCategory"`
	}
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	require.NotEmpty(t, a)
	assert.Equal(t, "quant-ph", a[0].PrimaryCategory)
	assert.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestImportCmdText(t *testing.T) {
	out, err := run(t, "--seed", "3", "import", "2401.0001")
	require.NoError(t, err)
	assert.Contains(t, out, "arxiv-2401.0001.pdf")
	assert.Contains(t, out, "pages")
}

func TestImportCmdRejectsBlankID(t *testing.T) {
	for _, id := range []string{"", "   "} {
		out, err := run(t, "import", id)
		require.ErrorIs(t, err, arxiv.ErrInvalidInput)
		assert.NotContains(t, out, "arxiv-.pdf")
	}
}
