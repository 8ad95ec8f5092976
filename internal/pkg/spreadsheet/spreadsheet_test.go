package spreadsheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Close()

	require.NoError(t, w.AddSheet("Roster"))
	require.NoError(t, w.WriteHeader([]string{"Manager", "Employee", "User ID"}))
	require.NoError(t, w.WriteRow([]interface{}{"Alcina", "Maria Silva", "1001"}))
	require.NoError(t, w.WriteRow([]interface{}{"Alcina", "José Souza"}))

	data, err := w.Bytes()
	require.NoError(t, err)

	rows, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Manager", "Employee", "User ID"}, rows[0])
	assert.Equal(t, []string{"Alcina", "Maria Silva", "1001"}, rows[1])
	assert.Equal(t, []string{"Alcina", "José Souza"}, rows[2])
}

func TestReadFile(t *testing.T) {
	w := NewWriter()
	defer w.Close()
	require.NoError(t, w.AddSheet("Sheet"))
	require.NoError(t, w.WriteRow([]interface{}{"a", "b"}))
	data, err := w.Bytes()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, rows)
}

func TestWriter_NoSheet(t *testing.T) {
	w := NewWriter()
	defer w.Close()
	assert.Error(t, w.WriteRow([]interface{}{"x"}))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
