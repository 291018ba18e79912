package config

import (
	"pdf-triage/internal/domain"
	"pdf-triage/internal/pdf"
	"pdf-triage/internal/service"
	"pdf-triage/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config    domain.Config
	Logger    domain.Logger
	Opener    domain.SourceOpener
	Validator domain.SourceValidator
	Processor *service.DocumentProcessor
	Batch     *service.BatchOrchestrator
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	opener := pdf.NewOpener()
	validator := pdf.NewValidator()

	detector := service.NewTypeDetector(cfg, appLogger)
	raster := service.NewRasterPipeline(cfg, appLogger)
	vector := service.NewVectorPipeline(appLogger)

	processor := service.NewDocumentProcessor(opener, validator, detector, raster, vector, appLogger)
	batch := service.NewBatchOrchestrator(processor, cfg, appLogger)

	return &Container{
		Config:    cfg,
		Logger:    appLogger,
		Opener:    opener,
		Validator: validator,
		Processor: processor,
		Batch:     batch,
	}
}
