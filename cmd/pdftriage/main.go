package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"pdf-triage/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	var (
		mode   = flag.String("mode", "batch", "processing mode: single or batch")
		input  = flag.String("input", "", "input PDF file (single) or directory (batch); defaults to INPUT_PATH")
		output = flag.String("output", "", "root output directory; defaults to OUTPUT_PATH")
	)
	flag.Parse()

	// Wiring
	container := config.NewContainer()

	inputPath := *input
	if inputPath == "" {
		inputPath = container.Config.GetInputPath()
	}
	outputRoot := *output
	if outputRoot == "" {
		outputRoot = container.Config.GetOutputPath()
	}

	switch *mode {
	case "single":
		result := container.Processor.Process(inputPath, filepath.Join(outputRoot, "single"))
		if result.Failed() {
			container.Logger.Info("processing failed", "pdf", result.PdfName, "reason", result.Error)
			os.Exit(1)
		}
		container.Logger.Info("processing finished",
			"pdf", result.PdfName,
			"type", result.Type,
			"total_pages", result.TotalPages,
			"processed_files", len(result.ProcessedFiles))
	case "batch":
		summary, err := container.Batch.Run(context.Background(), inputPath, filepath.Join(outputRoot, "batch"))
		if err != nil {
			container.Logger.Error("batch run failed", err)
			os.Exit(1)
		}
		container.Logger.Info("batch summary",
			"total_pdfs", summary.TotalPDFs,
			"successful", summary.SuccessfulProcessing,
			"failed", summary.FailedProcessing)
	default:
		log.Printf("unknown mode %q (expected single or batch)", *mode)
		os.Exit(2)
	}
}
