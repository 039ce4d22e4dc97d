// Command lignin-cli reads a script program from standard input until
// EOF, evaluates it against the solid-modeling kernel, and reports
// every display() and write_stl() call the program made.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/solidkernel/internal/config"
	"github.com/chazu/solidkernel/pkg/engine"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("lignin-cli: %v", err)
		}
		cfg = loaded
	}

	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("lignin-cli: reading stdin: %v", err)
	}

	os.Exit(run(string(source), cfg))
}

func run(source string, cfg config.Config) int {
	eng := engine.NewEngine()
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lignin-cli: fatal: %v\n", err)
		return 1
	}

	for _, e := range evalErrs {
		fmt.Fprintf(os.Stderr, "lignin-cli: %s\n", e.Error())
	}
	if len(evalErrs) > 0 && cfg.FailOnEvalErrors {
		return 1
	}
	if sc == nil {
		return 0
	}

	for _, snap := range sc.Snapshots {
		fmt.Printf("display %s: %d faces\n", snap.Name, len(snap.Solid.Faces))
	}
	for _, w := range sc.Written {
		fmt.Printf("wrote %s: %d facets\n", w.Path, w.FacetCount)
	}

	return 0
}
