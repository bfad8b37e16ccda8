package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/excelmerge/excelmerge/internal/config"
	"github.com/excelmerge/excelmerge/internal/logging"
	"github.com/excelmerge/excelmerge/internal/merger"
)

func main() {
	outDir := flag.String("out", "", "output directory (overrides EXCELMERGE_OUTPUT_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	log := logging.New(logging.ParseLevel(cfg.Log.Level))

	m := merger.New(cfg.OutputDir, log)
	result := m.MergeFiles(flag.Args())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}

	if !result.Success {
		os.Exit(1)
	}
}
