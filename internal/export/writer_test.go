package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveText(t *testing.T) {
	dir := t.TempDir()
	summary := "# 檔名：測試摘要\n\n內容本文"

	path, err := SaveText(dir, summary)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "測試摘要.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, summary, string(data), "summary persisted verbatim")
}

func TestSaveTextFallbackName(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveText(dir, "Some ad-hoc first line\nbody")
	require.NoError(t, err)

	assert.Equal(t, "Some_ad_hoc_first_line.txt", filepath.Base(path))
}

func TestSaveTextCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	_, err := SaveText(dir, "# 檔名：x\n")
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
