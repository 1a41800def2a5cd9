// Package app implements the application layer for cram.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/engine/compat"
	"go.trai.ch/cram/internal/engine/pruner"
	"go.trai.ch/zerr"
)

// App wires the conversion pipeline: load the legacy store, prune the graph
// to a fixed point, aggregate compatibility facts, emit the manifest.
type App struct {
	configLoader   ports.ConfigLoader
	registryLoader ports.RegistryLoader
	pruner         *pruner.Pruner
	aggregator     *compat.Aggregator
	writer         ports.ManifestWriter
	logger         ports.Logger
	telemetry      ports.Telemetry
}

// New creates an App instance.
func New(
	configLoader ports.ConfigLoader,
	registryLoader ports.RegistryLoader,
	prn *pruner.Pruner,
	aggregator *compat.Aggregator,
	writer ports.ManifestWriter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader:   configLoader,
		registryLoader: registryLoader,
		pruner:         prn,
		aggregator:     aggregator,
		writer:         writer,
		logger:         logger,
		telemetry:      telemetry,
	}
}

// Convert runs the whole conversion described by the settings file at
// configPath.
func (a *App) Convert(ctx context.Context, configPath string) error {
	defer func() { _ = a.telemetry.Close() }()

	settings, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	ctx, loadVtx := a.telemetry.Record(ctx, "load legacy store")
	registry, err := a.registryLoader.Load(ctx, settings.Root)
	loadVtx.Done(err)
	if err != nil {
		return zerr.Wrap(err, "failed to load legacy store")
	}
	loaded := registry.Len()

	_, pruneVtx := a.telemetry.Record(ctx, "prune registry")
	report := a.pruner.Prune(registry, settings.Interpreters)
	pruneVtx.Done(nil)
	a.logger.Info(fmt.Sprintf(
		"pruned %d releases and %d packages in %d passes, %d of %d packages remain",
		report.ReleasesRemoved, report.PackagesRemoved, report.Passes, registry.Len(), loaded,
	))

	_, aggVtx := a.telemetry.Record(ctx, "aggregate compatibility facts")
	manifest, err := a.aggregator.Aggregate(registry, settings)
	aggVtx.Done(err)
	if err != nil {
		return zerr.Wrap(err, "failed to aggregate compatibility facts")
	}

	_, writeVtx := a.telemetry.Record(ctx, "write manifest")
	err = a.writer.Write(settings.Output, manifest)
	writeVtx.Done(err)
	if err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}

	a.logger.Info(fmt.Sprintf("wrote %s", settings.Output))
	return nil
}
