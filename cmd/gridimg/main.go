// Command gridimg renders a puzzle JSON document into PNG images: a
// combined puzzle view, the training examples alone, the test input with a
// blank answer placeholder, and the revealed answer.
//
// Usage:
//
//	gridimg [flags] <puzzle.json>
//
// Outputs are written next to the input file unless -output-dir is given.
// The test and answer images are skipped with a warning when the document
// lacks the grids they need; any other failure exits non-zero.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tsawler/gridimg"
)

func main() {
	var outputDir string
	flag.StringVar(&outputDir, "output-dir", "", "output directory (default: same as input file)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gridimg [flags] <puzzle.json>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inPath := args[0]

	if _, err := os.Stat(inPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", inPath)
		os.Exit(1)
	}

	r := gridimg.Open(inPath)
	if outputDir != "" {
		r = r.OutputDir(outputDir)
	}

	results, warnings, err := r.RenderAll()
	for _, res := range results {
		if res.Err == nil {
			fmt.Printf("Created: %s\n", res.Path)
		}
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s. Skipping %s image.\n", w.Message, w.Kind)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
