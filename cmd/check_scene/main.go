package main

import (
	"fmt"
	"os"

	gomirror "github.com/jdginn/go-mirror-studio/mirror"
	mirrorConfig "github.com/jdginn/go-mirror-studio/mirror/config"
)

// enclosingObjects returns the IDs of colliding objects the viewer stands inside
func enclosingObjects(objects []gomirror.Object, viewer gomirror.Observer) []string {
	var ids []string
	for _, obj := range objects {
		if obj.Kind.Collides() && obj.Contains(viewer.Position) {
			ids = append(ids, obj.ID)
		}
	}
	return ids
}

func run(path string) error {
	config, err := mirrorConfig.LoadFromFile(path, mirrorConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return err
	}

	objects, err := config.SceneObjects()
	if err != nil {
		return err
	}

	viewer := config.Viewer.Create()
	if ids := enclosingObjects(objects, viewer); len(ids) > 0 {
		return fmt.Errorf("ERROR: viewer at (%.3f, %.3f) is inside %v", viewer.Position.X, viewer.Position.Y, ids)
	}
	return nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: check_scene <config.yaml>")
		os.Exit(2)
	}
	err := run(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(0)
}
