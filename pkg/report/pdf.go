package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/iohelper"
)

// ErrRendererUnavailable marks a renderer whose backing tool is not
// installed on this machine.
var ErrRendererUnavailable = errors.New("report: renderer unavailable")

// PageSize is a named paper size for PDF output.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
)

// dimensions returns width and height in inches.
func (p PageSize) dimensions() (w, h float64) {
	if p == PageLetter {
		return 8.5, 11
	}
	return 8.27, 11.69
}

// StyleOptions controls PDF page geometry per report theme.
type StyleOptions struct {
	PageSize PageSize
	// Margins in inches: top, right, bottom, left.
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// StyleFor returns the page style for a theme.
func StyleFor(theme Theme) StyleOptions {
	switch theme {
	case ThemeTechnical:
		return StyleOptions{PageSize: PageA4, MarginTop: 0.75, MarginRight: 0.75, MarginBottom: 0.75, MarginLeft: 0.75}
	case ThemeCompliance:
		return StyleOptions{PageSize: PageA4, MarginTop: 1.0, MarginRight: 1.0, MarginBottom: 1.0, MarginLeft: 1.0}
	default:
		return StyleOptions{PageSize: PageA4, MarginTop: 1.0, MarginRight: 0.75, MarginBottom: 1.0, MarginLeft: 0.75}
	}
}

// DocumentRenderer converts a rendered HTML report into a PDF.
type DocumentRenderer interface {
	// RenderPDF converts html to PDF bytes.
	RenderPDF(ctx context.Context, html []byte, style StyleOptions) ([]byte, error)
}

// ChromeRenderer prints the HTML through headless Chrome, preserving
// the report's CSS exactly.
type ChromeRenderer struct {
	// ExecPath overrides Chrome binary discovery.
	ExecPath string
}

// chromeBinaries are probed in order when ExecPath is unset.
var chromeBinaries = []string{"google-chrome", "chromium", "chromium-browser", "chrome"}

func (r *ChromeRenderer) findBrowser() (string, error) {
	if r.ExecPath != "" {
		if _, err := exec.LookPath(r.ExecPath); err != nil {
			return "", fmt.Errorf("%w: %s not found", ErrRendererUnavailable, r.ExecPath)
		}
		return r.ExecPath, nil
	}
	for _, name := range chromeBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no Chrome or Chromium binary found", ErrRendererUnavailable)
}

// RenderPDF implements DocumentRenderer.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html []byte, style StyleOptions) ([]byte, error) {
	execPath, err := r.findBrowser()
	if err != nil {
		return nil, err
	}

	// Chrome needs a URL; serve the document from a temp file.
	tmp, err := os.CreateTemp("", "report-*.html")
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("report: %w", err)
	}
	tmp.Close()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	fileURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(tmp.Name())}
	w, h := style.PageSize.dimensions()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(fileURL.String()),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(w).
				WithPaperHeight(h).
				WithMarginTop(style.MarginTop).
				WithMarginRight(style.MarginRight).
				WithMarginBottom(style.MarginBottom).
				WithMarginLeft(style.MarginLeft).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("report: chrome render: %w", err)
	}
	return pdf, nil
}

// Generator produces the final report artifacts.
type Generator struct {
	renderers []DocumentRenderer
	logger    *slog.Logger
	timeout   time.Duration
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRenderers replaces the default renderer chain.
func WithRenderers(renderers ...DocumentRenderer) GeneratorOption {
	return func(g *Generator) { g.renderers = renderers }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator with the default renderer chain:
// headless Chrome first, then the native PDF writer.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		renderers: []DocumentRenderer{&ChromeRenderer{}},
		logger:    slog.Default(),
		timeout:   defaults.RenderTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WriteHTML renders the HTML report to path.
func (g *Generator) WriteHTML(data Data, path string) error {
	html, err := renderHTML(data)
	if err != nil {
		return err
	}
	return writeArtifact(path, html)
}

// GeneratePDF renders the HTML report to a PDF at path. Renderers are
// tried in order; when none succeeds the native PDF writer runs, and
// if that also fails the HTML is written next to the requested path
// with conversion instructions.
func (g *Generator) GeneratePDF(ctx context.Context, data Data, path string) error {
	html, err := renderHTML(data)
	if err != nil {
		return err
	}

	style := StyleFor(data.Config.Theme)
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	for _, r := range g.renderers {
		pdf, err := r.RenderPDF(ctx, html, style)
		if err != nil {
			if errors.Is(err, ErrRendererUnavailable) {
				g.logger.Debug("PDF renderer unavailable, trying next", "error", err)
			} else {
				g.logger.Warn("PDF renderer failed, trying next", "error", err)
			}
			continue
		}
		if err := writeArtifact(path, pdf); err != nil {
			return err
		}
		return nil
	}

	// Renderer chain exhausted: native writer.
	pdf, err := RenderNativePDF(data)
	if err == nil {
		g.logger.Info("rendered PDF with native writer")
		return writeArtifact(path, pdf)
	}
	g.logger.Warn("native PDF writer failed, emitting HTML fallback", "error", err)

	htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if err := writeArtifact(htmlPath, html); err != nil {
		return err
	}
	instrPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_instructions.txt"
	return writeArtifact(instrPath, []byte(pdfInstructions(htmlPath)))
}

func renderHTML(data Data) ([]byte, error) {
	builder, err := NewHTMLBuilder()
	if err != nil {
		return nil, err
	}
	return builder.Render(data)
}

func writeArtifact(path string, content []byte) error {
	if err := iohelper.EnsureDir(path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := iohelper.WriteFileAtomic(path, content); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// pdfInstructions explains manual conversion when no renderer works.
func pdfInstructions(htmlPath string) string {
	return fmt.Sprintf(`PDF GENERATION INSTRUCTIONS
===========================

Automatic PDF conversion was not possible on this machine.
The report was saved as HTML instead: %s

To produce a PDF manually, either:

1. Open the HTML file in any browser and use Print > Save as PDF.

2. Install Chrome or Chromium and run:
   google-chrome --headless --print-to-pdf=report.pdf %s

3. Install wkhtmltopdf and run:
   wkhtmltopdf %s report.pdf
`, htmlPath, htmlPath, htmlPath)
}
