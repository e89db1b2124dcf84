package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
)

func main() {
	addr := flag.String("addr", ":"+getenv("PORT", "8080"), "listen address")
	extra := flag.String("diagrams", getenv("DIAGRAMS_FILE", ""), "JSON file with extra diagrams")
	diagramID := flag.String("diagram", "", "diagram used by -tui and -png")
	tui := flag.Bool("tui", false, "explore -diagram in the terminal instead of serving")
	pngOut := flag.String("png", "", "write -diagram to this PNG file and exit")
	flag.Parse()

	store := NewStore()
	fatalIf(store.LoadBuiltins(), "load builtin diagrams")
	if *extra != "" {
		fatalIf(store.LoadFile(*extra), "load diagrams")
		log.Printf("Loaded diagrams from %s", *extra)
	}

	switch {
	case *pngOut != "":
		live, err := store.Open(*diagramID, nil)
		fatalIf(err, "open diagram")
		fatalIf(SavePNG(*pngOut, live.State.Snapshot(), defaultCellSize), "export png")
		log.Printf("Wrote %s", *pngOut)
		return
	case *tui:
		live, err := store.Open(*diagramID, nil)
		fatalIf(err, "open diagram")
		fatalIf(RunTUI(live), "tui")
		return
	}

	ctx := context.Background()

	projectID := os.Getenv("GCP_PROJECT_ID")

	var gemini *GeminiClient
	if projectID != "" {
		var err error
		gemini, err = NewGeminiClient(ctx, GeminiConfig{
			ProjectID: projectID,
			Region:    os.Getenv("GCP_REGION"),
			Model:     os.Getenv("GEMINI_MODEL"),
		})
		if err != nil {
			log.Fatalf("Could not initialise Gemini: %v", err)
		}
		defer gemini.Close()
		log.Printf("Gemini client ready (project: %s, model: %s)", projectID, gemini.Model())
	} else {
		log.Println("GCP_PROJECT_ID not set, photo import disabled")
	}

	srv := NewServer(store, gemini)

	log.Printf("Server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
