package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAndInspect(t *testing.T) {
	t.Setenv("REPORT_TEMPLATE_PATH", filepath.Join(t.TempDir(), "missing-template.png"))
	t.Setenv("REPORT_FONT_PATH", "")
	t.Setenv("REPORT_DEFAULT_PHOTO_URL", filepath.Join(t.TempDir(), "missing-photo.png"))

	dir := t.TempDir()
	input := filepath.Join(dir, "request.json")
	output := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"candidate_name": "Jane Doe",
		"candidate_position": "Backend Engineer",
		"date": "2024-05-01",
		"interview_id": "INT-42",
		"ai_overview": "Question: Your communication skills\nScore: 8\nComment: Excellent clarity\n\nOverall Evaluation: Strong candidate."
	}`), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"render", "--input", input, "--out", output})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "2 pages, 1 questions")

	out.Reset()
	rootCmd.SetArgs([]string{"inspect", output})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"pages": 2`)
	assert.Contains(t, out.String(), "Score Overview")
}

func TestRender_InvalidRequest(t *testing.T) {
	input := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"candidate_name":"Jane"}`), 0o600))

	rootCmd.SetArgs([]string{"render", "--input", input})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing field: candidate_position")
}
