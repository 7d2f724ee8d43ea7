// Manual end-to-end harness: starts a mock generation endpoint, runs the
// import flow into a fresh session, then writes the export HTML next to the
// binary. Run it by hand when touching the pipeline; it is not part of the
// test suite.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/render"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/usecase"
	"github.com/Ratheesh-24/ai-resume-builder-lab/pkg/ai"
)

func startMockAI(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["prompt"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		doc := map[string]interface{}{
			"basicInfo": map[string]string{
				"name":     "Test User",
				"email":    "t@example.com",
				"location": "Porto",
				"github":   "github.com/testuser",
			},
			"summary": "Backend engineer with a focus on data pipelines and reliability.",
			"experience": []map[string]interface{}{
				{"company": "Acme", "position": "Engineer", "startDate": "2021-03", "current": true, "description": "Built event pipelines.\nReduced incident rate."},
			},
			"skills": []string{"Go", "Postgres", "Docker"},
		}
		raw, _ := json.Marshal(doc)
		_ = json.NewEncoder(w).Encode(map[string]string{"result": string(raw)})
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock generation server failed: %v", err)
		}
	}()
	return srv
}

func main() {
	srv := startMockAI("127.0.0.1:8000")
	defer srv.Shutdown(context.Background())
	time.Sleep(100 * time.Millisecond)

	sessions := store.NewManager(time.Hour)
	sess := sessions.Create()
	_, st, err := sessions.Get(sess.ID.String())
	if err != nil {
		log.Fatalf("session lookup: %v", err)
	}

	client := ai.NewClient("http://127.0.0.1:8000/api/generate", 10*time.Second)
	importer := usecase.NewImporter(client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := importer.Generate(ctx, sess, st, "senior backend engineer, event pipelines"); err != nil {
		fmt.Printf("generate failed: %v\n", err)
		return
	}

	html, err := render.ExportHTML(render.Project(st.Document()))
	if err != nil {
		fmt.Printf("render failed: %v\n", err)
		return
	}

	out := "resume_smoke.html"
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Printf("write failed: %v\n", err)
		return
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(html))
}
