// Renders a resume JSON file to export HTML for visual inspection. Usage:
//
//	go run tools/render_resume.go resume.json out.html
package main

import (
	"fmt"
	"os"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/render"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

func main() {
	in, out := "resume.json", "resume_preview.html"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	if len(os.Args) > 2 {
		out = os.Args[2]
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", in, err)
		os.Exit(2)
	}

	partial, warnings, err := model.DecodePartial(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(2)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	st := store.New()
	st.Update(partial)

	html, err := render.ExportHTML(render.Project(st.Document()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
