package experiment

import (
	"math/rand/v2"
	"time"
)

var (
	adjectives = []string{
		"silver", "polished", "curved", "flat", "bright", "dim", "hazy", "clear",
		"tilted", "angled", "mirrored", "glassy", "frosted", "gleaming", "pale",
		"shimmering", "quiet", "amber", "violet", "crimson", "golden", "bent",
		"folded", "hidden", "distant", "narrow", "wide", "twin", "lone", "still",
	}

	nouns = []string{
		"prism", "lens", "mirror", "beam", "ray", "glint", "halo", "flare",
		"pane", "lantern", "candle", "sunbeam", "shadow", "echo", "corridor",
		"periscope", "kaleidoscope", "window", "pool", "lake", "pond", "puddle",
		"spoon", "facet", "spark", "aurora", "image", "reflection", "glimmer",
	}
)

// GenerateRunName creates a memorable run name in the form "adjective-noun"
func GenerateRunName() string {
	return adjectives[rand.IntN(len(adjectives))] + "-" + nouns[rand.IntN(len(nouns))]
}

// GenerateRunID combines a memorable name with the run timestamp so that IDs sort by time within a name
func GenerateRunID(t time.Time) string {
	return GenerateRunName() + "-" + t.UTC().Format("20060102-150405.000")
}
