package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer lets tests script the renderer chain.
type fakeRenderer struct {
	out   []byte
	err   error
	calls int
}

func (f *fakeRenderer) RenderPDF(ctx context.Context, html []byte, style StyleOptions) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func TestStyleForThemeMargins(t *testing.T) {
	exec := StyleFor(ThemeExecutive)
	assert.Equal(t, PageA4, exec.PageSize)
	assert.Equal(t, 1.0, exec.MarginTop)
	assert.Equal(t, 0.75, exec.MarginRight)

	tech := StyleFor(ThemeTechnical)
	assert.Equal(t, 0.75, tech.MarginTop)

	comp := StyleFor(ThemeCompliance)
	assert.Equal(t, 1.0, comp.MarginRight)
}

func TestRenderNativePDF(t *testing.T) {
	data := BuildData(sampleFindings(), Config{Title: "Native Render Test"})

	raw, err := RenderNativePDF(data)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "missing PDF header")

	reader := bytes.NewReader(raw)
	require.NoError(t, pdfapi.Validate(reader, nil))

	reader.Seek(0, 0)
	count, err := pdfapi.PageCount(reader, nil)
	require.NoError(t, err)
	// Cover, summary, findings, recommendations.
	assert.GreaterOrEqual(t, count, 4)
}

func TestRenderNativePDFEmptyFindings(t *testing.T) {
	data := BuildData(nil, Config{})
	raw, err := RenderNativePDF(data)
	require.NoError(t, err)
	require.NoError(t, pdfapi.Validate(bytes.NewReader(raw), nil))
}

func TestGeneratePDFUsesFirstWorkingRenderer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	broken := &fakeRenderer{err: ErrRendererUnavailable}
	working := &fakeRenderer{out: []byte("%PDF-fake")}
	g := NewGenerator(WithRenderers(broken, working))

	data := BuildData(sampleFindings(), Config{})
	require.NoError(t, g.GeneratePDF(context.Background(), data, path))

	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(got))
}

func TestGeneratePDFFallsBackToNative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	g := NewGenerator(WithRenderers(&fakeRenderer{err: ErrRendererUnavailable}))
	data := BuildData(sampleFindings(), Config{})
	require.NoError(t, g.GeneratePDF(context.Background(), data, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
	require.NoError(t, pdfapi.Validate(bytes.NewReader(raw), nil))
}

func TestWriteHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.html")

	g := NewGenerator()
	data := BuildData(sampleFindings(), Config{Title: "HTML Artifact"})
	require.NoError(t, g.WriteHTML(data, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(raw)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "HTML Artifact")
}

func TestPDFInstructionsMentionHTMLPath(t *testing.T) {
	instr := pdfInstructions("/tmp/report.html")
	assert.Contains(t, instr, "/tmp/report.html")
	assert.Contains(t, instr, "PDF")
}
