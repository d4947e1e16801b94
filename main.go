package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-mirror-studio/interact"
	gomirror "github.com/jdginn/go-mirror-studio/mirror"
	mirrorConfig "github.com/jdginn/go-mirror-studio/mirror/config"
	mirrorExperiment "github.com/jdginn/go-mirror-studio/mirror/experiment"
)

var CLI struct {
	Trace    TraceCmd    `cmd:"" help:"Trace the ray seen by the viewer and report its mirror images"`
	Sweep    SweepCmd    `cmd:"" help:"Trace a fan of rays around the viewer heading"`
	Browse   BrowseCmd   `cmd:"" help:"Sweep a scene and browse the results interactively"`
	Validate ValidateCmd `cmd:"" help:"Validate a scene config"`
}

func loadConfig(path string) (*mirrorConfig.SceneConfig, gomirror.SceneGeometry, error) {
	config, err := mirrorConfig.LoadFromFile(path, mirrorConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return nil, gomirror.SceneGeometry{}, err
	}
	geometry, err := config.Geometry()
	if err != nil {
		return nil, gomirror.SceneGeometry{}, fmt.Errorf("building scene geometry: %w", err)
	}
	return config, geometry, nil
}

// saveRun stores the config and the observations in a fresh run directory.
//
// The config is saved with objects from external files inlined so the run can be reloaded on its own.
func saveRun(root, configPath string, config *mirrorConfig.SceneConfig, geometry gomirror.SceneGeometry, observations []gomirror.Observation) error {
	runDir, err := mirrorExperiment.CreateRunDirectory(root)
	if err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	if err := mirrorConfig.SaveToFile(config.Flattened(), runDir.GetFilePath(filepath.Base(configPath))); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	out := runDir.GetFilePath("observations.json")
	if err := gomirror.SaveObservationsToJSON(out, geometry, observations); err != nil {
		return err
	}
	log.Printf("Saved %d observations to %s", len(observations), out)
	return nil
}

type TraceCmd struct {
	Config string `arg:"" name:"config" help:"scene config to trace" type:"existingfile"`
	Runs   string `name:"runs" default:"runs" help:"directory to store run output in"`
	NoSave bool   `name:"no-save" help:"print results without writing a run directory"`
}

func (c TraceCmd) Run() error {
	config, geometry, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	viewer := config.Viewer.Create()

	path := gomirror.TraceRayWithParams(geometry, viewer.Position, viewer.Heading, config.Simulation.MaxLength, config.Simulation.TraceParams())
	obs := gomirror.Observation{
		Heading: viewer.Heading,
		Path:    path,
		Images:  gomirror.ComputeMirrorImages(path),
	}

	for i, seg := range obs.Path {
		end := seg.End()
		hit := seg.HitOwnerID
		if hit == "" {
			hit = "-"
		}
		fmt.Printf("leg %2d: (%.3f, %.3f) -> (%.3f, %.3f) length %.3f hit %s\n", i, seg.Origin.X, seg.Origin.Y, end.X, end.Y, seg.Length, hit)
	}
	for _, img := range obs.Images {
		fmt.Printf("image of %s from leg %d at (%.3f, %.3f)\n", img.ObjectID, img.ReflectionPointIndex, img.Position.X, img.Position.Y)
	}

	if c.NoSave {
		return nil
	}
	return saveRun(c.Runs, c.Config, config, geometry, []gomirror.Observation{obs})
}

func sweep(configPath string) (*mirrorConfig.SceneConfig, gomirror.SceneGeometry, []gomirror.Observation, error) {
	config, geometry, err := loadConfig(configPath)
	if err != nil {
		return nil, gomirror.SceneGeometry{}, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	headings := config.Headings()
	log.Printf("Tracing %d headings against %d segments", len(headings), geometry.SegmentCount())
	observations, err := gomirror.Sweep(ctx, geometry, config.Viewer.Create(), config.Simulation.MaxLength, headings, config.Simulation.TraceParams(), config.Simulation.Sweep.Workers)
	if err != nil {
		return nil, gomirror.SceneGeometry{}, nil, fmt.Errorf("sweeping headings: %w", err)
	}
	return config, geometry, observations, nil
}

type SweepCmd struct {
	Config string `arg:"" name:"config" help:"scene config to sweep" type:"existingfile"`
	Runs   string `name:"runs" default:"runs" help:"directory to store run output in"`
	NoSave bool   `name:"no-save" help:"print results without writing a run directory"`
}

func (c SweepCmd) Run() error {
	config, geometry, observations, err := sweep(c.Config)
	if err != nil {
		return err
	}

	counts := gomirror.HitCounts(observations)
	escaped := len(observations)
	for _, id := range gomirror.SortedIDs(counts) {
		escaped -= counts[id]
		images := gomirror.PrimaryImages(observations, id)
		fmt.Printf("%-20s %5d hits %5d seen via a mirror\n", id, counts[id], len(images))
	}
	fmt.Printf("%-20s %5d\n", "escaped", escaped)

	if c.NoSave {
		return nil
	}
	return saveRun(c.Runs, c.Config, config, geometry, observations)
}

type BrowseCmd struct {
	Config string `arg:"" name:"config" help:"scene config to sweep" type:"existingfile"`
}

func (c BrowseCmd) Run() error {
	_, _, observations, err := sweep(c.Config)
	if err != nil {
		return err
	}
	return interact.Browse(c.Config, observations)
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"config file to validate" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	config, geometry, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d objects, %d segments, %d headings\n", c.Config, len(config.Objects.Inline), geometry.SegmentCount(), len(config.Headings()))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
