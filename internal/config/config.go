package config

import (
	"os"
	"runtime"
	"strconv"

	"pdf-triage/internal/domain"
)

// AppConfig implements the domain.Config interface. All heuristic
// thresholds are configuration, not code, so tests and deployments can
// override them via environment variables.
type AppConfig struct {
	LogLevel   string
	InputPath  string
	OutputPath string

	// WorkerCount bounds the number of documents processed in parallel.
	WorkerCount int

	// SamplePages bounds how many leading pages the type detector
	// rasterizes. Document type is expected to be homogeneous, so
	// sampling the whole document is wasteful.
	SamplePages  int
	DetectionDPI float64
	ProcessDPI   float64

	// EdgeDensityThreshold is the average edge density above which a
	// low-text document classifies as raster.
	EdgeDensityThreshold float64
	// RasterMaxTextLen is the total sampled text length below which the
	// raster rule may fire.
	RasterMaxTextLen int
	// VectorMinTextLen is the total sampled text length at which a
	// document classifies as vector regardless of edge density.
	VectorMinTextLen int

	// BinarizeThreshold is applied to the edge map in the raster pipeline.
	BinarizeThreshold uint8
	// MaxPages caps how many pages the raster pipeline processes;
	// 0 means all pages. Text extraction is cheap and never capped.
	MaxPages int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		InputPath:   getEnvOrDefault("INPUT_PATH", "./pdfs"),
		OutputPath:  getEnvOrDefault("OUTPUT_PATH", "./output"),
		WorkerCount: getEnvIntOrDefault("WORKER_COUNT", runtime.NumCPU()),

		SamplePages:  getEnvIntOrDefault("SAMPLE_PAGES", 3),
		DetectionDPI: getEnvFloatOrDefault("DETECTION_DPI", 72),
		ProcessDPI:   getEnvFloatOrDefault("PROCESS_DPI", 150),

		EdgeDensityThreshold: getEnvFloatOrDefault("EDGE_DENSITY_THRESHOLD", 0.95),
		RasterMaxTextLen:     getEnvIntOrDefault("RASTER_MAX_TEXT_LEN", 16),
		VectorMinTextLen:     getEnvIntOrDefault("VECTOR_MIN_TEXT_LEN", 64),

		BinarizeThreshold: uint8(getEnvIntOrDefault("BINARIZE_THRESHOLD", 128)),
		MaxPages:          getEnvIntOrDefault("MAX_PAGES", 0),
	}
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetInputPath returns the default input file or directory
func (c *AppConfig) GetInputPath() string {
	return c.InputPath
}

// GetOutputPath returns the root output directory
func (c *AppConfig) GetOutputPath() string {
	return c.OutputPath
}

// GetWorkerCount returns the worker pool size for batch processing
func (c *AppConfig) GetWorkerCount() int {
	if c.WorkerCount < 1 {
		return 1
	}
	return c.WorkerCount
}

// GetSamplePages returns how many leading pages detection samples
func (c *AppConfig) GetSamplePages() int {
	if c.SamplePages < 1 {
		return 1
	}
	return c.SamplePages
}

// GetDetectionDPI returns the rasterization resolution used for detection
func (c *AppConfig) GetDetectionDPI() float64 {
	return c.DetectionDPI
}

// GetProcessDPI returns the rasterization resolution used by the raster pipeline
func (c *AppConfig) GetProcessDPI() float64 {
	return c.ProcessDPI
}

// GetEdgeDensityThreshold returns the high-density cutoff for the raster rule
func (c *AppConfig) GetEdgeDensityThreshold() float64 {
	return c.EdgeDensityThreshold
}

// GetRasterMaxTextLen returns the low-text cutoff for the raster rule
func (c *AppConfig) GetRasterMaxTextLen() int {
	return c.RasterMaxTextLen
}

// GetVectorMinTextLen returns the minimum-text cutoff for the vector rule
func (c *AppConfig) GetVectorMinTextLen() int {
	return c.VectorMinTextLen
}

// GetBinarizeThreshold returns the edge-map binarization threshold
func (c *AppConfig) GetBinarizeThreshold() uint8 {
	return c.BinarizeThreshold
}

// GetMaxPages returns the raster pipeline page cap (0 = all pages)
func (c *AppConfig) GetMaxPages() int {
	return c.MaxPages
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
