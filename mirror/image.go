package mirror

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// MirrorImage is where the terminal object of a path appears to be when seen from one of its legs.
type MirrorImage struct {
	Position r2.Vec
	// Index of the leg the image is unfolded from
	ReflectionPointIndex int
	// The object being imaged, i.e. the hit owner of the terminal leg
	ObjectID string
}

// ComputeMirrorImage unfolds subPath into a straight line from its first origin.
//
// The image lies along the first leg's direction at the total folded length of the path.
// The caller must pass a sub-path ending on the object of interest; this is not checked.
func ComputeMirrorImage(subPath []RaySegment) (r2.Vec, bool) {
	if len(subPath) == 0 {
		return r2.Vec{}, false
	}
	total := RayPath(subPath).TotalLength()
	dir := Normalize(subPath[0].Direction)
	return r2.Add(subPath[0].Origin, r2.Scale(total, dir)), true
}

// ComputeMirrorImages returns one image per reflection point of path, nearest to the viewer first.
//
// A path whose terminal leg hit nothing has no images.
func ComputeMirrorImages(path RayPath) []MirrorImage {
	terminal, ok := path.Terminal()
	if !ok || !terminal.HasHit() {
		return nil
	}
	var images []MirrorImage
	for i := 0; i < len(path)-1; i++ {
		if !path[i].HasHit() {
			continue
		}
		pos, ok := ComputeMirrorImage(path[i:])
		if !ok {
			continue
		}
		images = append(images, MirrorImage{
			Position:             pos,
			ReflectionPointIndex: i,
			ObjectID:             terminal.HitOwnerID,
		})
	}
	return images
}
