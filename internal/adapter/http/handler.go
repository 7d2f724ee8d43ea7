package http

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/ats"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/editor"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/render"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/usecase"
	infra "github.com/Ratheesh-24/ai-resume-builder-lab/pkg/infrastructure"
)

type Handler struct {
	sessions *store.Manager
	importer *usecase.Importer
	exporter *usecase.Exporter
	log      *slog.Logger
}

func NewHandler(sessions *store.Manager, importer *usecase.Importer, exporter *usecase.Exporter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{sessions: sessions, importer: importer, exporter: exporter, log: log}
}

// session resolves the :id path param into the live session and its store.
func (h *Handler) session(c *fiber.Ctx) (*domain.Session, *store.Store, error) {
	return h.sessions.Get(c.Params("id"))
}

// Error bodies carry exactly one generic message per failure; the user
// cannot distinguish a transport failure from a decode failure, and that is
// deliberate.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	case errors.Is(err, domain.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
	case errors.Is(err, domain.ErrBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "operation already in progress"})
	case errors.Is(err, domain.ErrGenerateFailed), errors.Is(err, domain.ErrInvalidPayload):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to generate resume data"})
	case errors.Is(err, domain.ErrExportFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to export resume"})
	default:
		h.log.Error("unhandled error", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	sess := h.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": sess.ID.String()})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Document())
}

// UpdateResume exposes the store's merge contract directly: the body is a
// full or partial document, validated, then applied as a top-level-key
// replacement.
func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	partial, warnings, err := model.DecodePartial(c.Body())
	if err != nil {
		return badRequest(c)
	}
	for _, w := range warnings {
		h.log.Warn("resume update ambiguity", "warning", w)
	}
	st.Update(partial)
	return c.JSON(st.Document())
}

func (h *Handler) UpdateBasicInfo(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch editor.BasicInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c)
	}
	info := editor.NewBasicInfo(st).Apply(patch)
	return c.JSON(info)
}

func (h *Handler) UpdateSummary(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	editor.NewBasicInfo(st).SetSummary(req.Summary)
	return c.JSON(fiber.Map{"summary": req.Summary})
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(editor.NewExperience(st).Add())
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch editor.ExperiencePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c)
	}
	entry, err := editor.NewExperience(st).Update(c.Params("entryID"), patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entry)
}

func (h *Handler) DeleteExperience(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := editor.NewExperience(st).Remove(c.Params("entryID")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(editor.NewEducation(st).Add())
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch editor.EducationPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c)
	}
	entry, err := editor.NewEducation(st).Update(c.Params("entryID"), patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entry)
}

func (h *Handler) DeleteEducation(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := editor.NewEducation(st).Remove(c.Params("entryID")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(editor.NewProjects(st).Add())
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch editor.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c)
	}
	entry, err := editor.NewProjects(st).Update(c.Params("entryID"), patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entry)
}

func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := editor.NewProjects(st).Remove(c.Params("entryID")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req struct {
		Skill string `json:"skill"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	added := editor.NewSkills(st).Add(req.Skill)
	return c.JSON(fiber.Map{"added": added, "skills": st.Document().Skills})
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req struct {
		Skill string `json:"skill"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	removed := editor.NewSkills(st).Remove(req.Skill)
	return c.JSON(fiber.Map{"removed": removed, "skills": st.Document().Skills})
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	sess, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := h.importer.Generate(c.Context(), sess, st, req.Prompt); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Document())
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	sess, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	opts := pdfOptions(c)
	pdf, filename, err := h.exporter.ExportPDF(c.Context(), sess, st.Document(), opts)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *Handler) PrintView(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	html, err := h.exporter.PrintHTML(st.Document())
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) ATSScore(c *fiber.Ctx) error {
	_, st, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req struct {
		JobDescription string `json:"jobDescription"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	text := render.PlainText(render.Project(st.Document()))
	return c.JSON(ats.Score(text, req.JobDescription))
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "sessions": h.sessions.Len()})
}

func pdfOptions(c *fiber.Ctx) infra.PDFOptions {
	opts := infra.PDFOptions{Format: c.Query("format", "a4")}
	if m, err := strconv.ParseFloat(c.Query("margin"), 64); err == nil {
		opts.MarginMM = m
	}
	if strings.EqualFold(c.Query("orientation"), "landscape") {
		opts.Landscape = true
	}
	return opts
}
