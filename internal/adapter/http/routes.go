package http

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the API surface onto the fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Post("/sessions", h.CreateSession)

	s := api.Group("/sessions/:id")
	s.Get("/resume", h.GetResume)
	s.Patch("/resume", h.UpdateResume)
	s.Put("/resume/basic-info", h.UpdateBasicInfo)
	s.Put("/resume/summary", h.UpdateSummary)

	s.Post("/resume/experience", h.AddExperience)
	s.Patch("/resume/experience/:entryID", h.UpdateExperience)
	s.Delete("/resume/experience/:entryID", h.DeleteExperience)

	s.Post("/resume/education", h.AddEducation)
	s.Patch("/resume/education/:entryID", h.UpdateEducation)
	s.Delete("/resume/education/:entryID", h.DeleteEducation)

	s.Post("/resume/projects", h.AddProject)
	s.Patch("/resume/projects/:entryID", h.UpdateProject)
	s.Delete("/resume/projects/:entryID", h.DeleteProject)

	s.Post("/resume/skills", h.AddSkill)
	s.Delete("/resume/skills", h.RemoveSkill)

	s.Post("/generate", h.Generate)
	s.Get("/export/pdf", h.ExportPDF)
	s.Get("/print", h.PrintView)
	s.Post("/ats-score", h.ATSScore)
}
