package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clems4ever/gcode-table/gcode"
)

func main() {
	// Paths are relative to the repository root
	matches, err := filepath.Glob("gcode/testdata/*.gcode")
	if err != nil {
		log.Fatalf("Failed to list testdata: %v", err)
	}
	if len(matches) == 0 {
		log.Fatalf("No Gcode files found. Please run this command from the repository root.")
	}

	for _, inputFile := range matches {
		mode := gcode.Positional
		if strings.Contains(filepath.Base(inputFile), "addressed") {
			mode = gcode.Addressed
		}

		fmt.Printf("Reading %s (%s)...\n", inputFile, mode)
		f, err := os.Open(inputFile)
		if err != nil {
			log.Fatalf("Failed to open input file: %v", err)
		}
		table, err := gcode.NewBuilder(gcode.WithColumnMode(mode)).Build(f)
		f.Close()
		if err != nil {
			log.Fatalf("Build failed: %v", err)
		}

		var buf bytes.Buffer
		if err := gcode.WriteCSV(&buf, table); err != nil {
			log.Fatalf("Failed to encode table: %v", err)
		}

		outputFile := strings.TrimSuffix(inputFile, ".gcode") + "_golden.csv"
		fmt.Printf("Writing %s...\n", outputFile)
		if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
	}

	fmt.Println("Done. Golden files updated.")
}
