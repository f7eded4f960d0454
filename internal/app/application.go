package app

import (
	"log/slog"

	"bmidash.org/internal/appconf"
	"bmidash.org/internal/dashboard"
	"bmidash.org/internal/dataset"
)

// Application holds the dependencies shared by the web UI and the REST API.
type Application struct {
	Config     appconf.Config
	Logger     *slog.Logger
	Dataset    dataset.Source
	Controller *dashboard.Controller
}

// New wires an Application for cfg. The dataset file is opened lazily on every
// distribution request, so a missing file is not an error here.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	source, err := dataset.Open(cfg.DatasetPath, logger.With(slog.String("component", "dataset")))
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Dataset:    source,
		Controller: dashboard.NewController(),
	}, nil
}
