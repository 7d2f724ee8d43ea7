package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

// Generator is the external generation endpoint. Satisfied by ai.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// Importer runs the AI import flow: prompt out, resume-shaped JSON back,
// validated decode, then one shallow merge into the session store. Any key
// the AI returns replaces that whole section of the document; there is no
// merge-by-id reconciliation with existing entries.
type Importer struct {
	gen Generator
	log *slog.Logger
}

func NewImporter(gen Generator, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{gen: gen, log: log}
}

// Generate is single-flight per session. A transport failure maps to
// ErrGenerateFailed and a payload that fails the validated decode maps to
// ErrInvalidPayload; in both cases the document is left untouched.
func (i *Importer) Generate(ctx context.Context, sess *domain.Session, st *store.Store, prompt string) error {
	if !sess.TryBeginGenerate() {
		return domain.ErrBusy
	}
	defer sess.EndGenerate()

	raw, err := i.gen.Generate(ctx, prompt)
	if err != nil {
		i.log.Error("generation request failed", "session", sess.ID, "err", err)
		return fmt.Errorf("%w: %v", domain.ErrGenerateFailed, err)
	}

	partial, warnings, err := model.DecodePartial(raw)
	if err != nil {
		i.log.Error("generation payload rejected", "session", sess.ID, "err", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	for _, w := range warnings {
		i.log.Warn("generation payload ambiguity", "session", sess.ID, "warning", w)
	}

	st.Update(partial)
	i.log.Info("resume updated from generation", "session", sess.ID)
	return nil
}
