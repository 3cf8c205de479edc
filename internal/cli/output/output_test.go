package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	Error(&buf, "secret %q not found", "db-password")

	assert.Contains(t, buf.String(), `Error: secret "db-password" not found`)
}

func TestSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	Success(&buf, "Created secret %s", "id-1")

	assert.Contains(t, buf.String(), "Created secret id-1")
}

func TestJSONLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	err := JSONLine(&buf, struct {
		SecretID string `json:"secret_id"`
		Value    string `json:"value"`
	}{SecretID: "id-1", Value: `with "quotes" and
newline`})
	require.NoError(t, err)

	assert.Equal(t, `{"secret_id":"id-1","value":"with \"quotes\" and\nnewline"}`+"\n", buf.String())
}

func TestJSONLine_EmptySlice(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, JSONLine(&buf, []string{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	Table(&buf, []Column{
		{Name: "ID", Min: 4, Max: 10},
		{Name: "Key", Min: 4, Max: 10},
	}, [][]string{
		{"id-1", "db-password-production"},
		{"id-2", "api"},
	})

	out := buf.String()
	assert.Contains(t, out, "ID    Key")
	assert.Contains(t, out, "----")
	// Cells beyond Max are truncated with an ellipsis.
	assert.Contains(t, out, "db-pass...")
	assert.NotContains(t, out, "db-password-production")
	assert.Contains(t, out, "id-2  api")
}

func TestTable_WidthFollowsLongestCellUpToMax(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	Table(&buf, []Column{
		{Name: "Key", Min: 3, Max: 20},
		{Name: "Note", Min: 4, Max: 20},
	}, [][]string{
		{"db-password", "x"},
	})

	assert.Contains(t, buf.String(), "db-password  x")
}

func TestColorDiff(t *testing.T) {
	t.Parallel()

	diff := Diff("current", "new", "old-value\n", "new-value\n")
	assert.Contains(t, diff, "--- current")
	assert.Contains(t, diff, "+++ new")
	assert.Contains(t, diff, "old-value")
	assert.Contains(t, diff, "new-value")

	assert.Empty(t, colorDiff(""))
}
