package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFOptions is the artifact configuration: page format, margins and
// orientation. Zero value means A4 portrait with 10mm margins.
type PDFOptions struct {
	Format    string // "a4" or "letter"
	MarginMM  float64
	Landscape bool
}

// paper sizes in inches, width x height portrait
var paperSizes = map[string][2]float64{
	"a4":     {8.27, 11.69},
	"letter": {8.5, 11.0},
}

func (o PDFOptions) dimensions() (w, h float64) {
	format := strings.ToLower(o.Format)
	size, ok := paperSizes[format]
	if !ok {
		size = paperSizes["a4"]
	}
	w, h = size[0], size[1]
	if o.Landscape {
		w, h = h, w
	}
	return w, h
}

func (o PDFOptions) marginInches() float64 {
	m := o.MarginMM
	if m <= 0 {
		m = 10
	}
	return m / 25.4
}

type ChromedpRenderer struct{}

func NewChromedpRenderer() *ChromedpRenderer { return &ChromedpRenderer{} }

// RenderHTMLToPDF writes the HTML to a temp file, drives headless Chrome to
// it and prints the page to PDF. The HTML must be self-contained (inlined
// stylesheets); nothing else is copied next to it.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error) {
	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		execOpts = append(execOpts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, execOpts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	width, height := opts.dimensions()
	margin := opts.marginInches()

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithLandscape(opts.Landscape).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(string(pdfBuf), "%PDF") {
		return nil, fmt.Errorf("invalid PDF output (len=%d)", len(pdfBuf))
	}
	return pdfBuf, nil
}
