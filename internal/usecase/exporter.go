package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/render"
	infra "github.com/Ratheesh-24/ai-resume-builder-lab/pkg/infrastructure"
)

// Renderer turns self-contained HTML into a PDF artifact.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, opts infra.PDFOptions) ([]byte, error)
}

// Exporter is the terminal end of the pipeline: it reads a document
// snapshot, projects it, and serializes to a PDF download or a print
// rendition. It never writes back into the model.
type Exporter struct {
	renderer Renderer
	log      *slog.Logger
}

func NewExporter(r Renderer, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{renderer: r, log: log}
}

// ExportPDF produces the downloadable artifact and its filename. Single
// attempt, single-flight per session; any failure maps to ErrExportFailed.
func (e *Exporter) ExportPDF(ctx context.Context, sess *domain.Session, doc model.Resume, opts infra.PDFOptions) ([]byte, string, error) {
	if !sess.TryBeginExport() {
		return nil, "", domain.ErrBusy
	}
	defer sess.EndExport()

	html, err := render.ExportHTML(render.Project(doc))
	if err != nil {
		e.log.Error("export render failed", "session", sess.ID, "err", err)
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html, opts)
	if err != nil {
		e.log.Error("pdf generation failed", "session", sess.ID, "err", err)
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	e.log.Info("pdf exported", "session", sess.ID, "bytes", len(pdf))
	return pdf, Filename(doc), nil
}

// PrintHTML produces the print rendition of the same projection.
func (e *Exporter) PrintHTML(doc model.Resume) (string, error) {
	html, err := render.PrintHTML(render.Project(doc))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return html, nil
}

// Filename derives the download name from the subject's name, falling back
// to a literal when it is empty.
func Filename(doc model.Resume) string {
	name := doc.BasicInfo.Name
	if name == "" {
		name = "resume"
	}
	return name + ".pdf"
}
