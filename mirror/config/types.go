package config

// SceneConfig represents the complete configuration for a mirror scene simulation
type SceneConfig struct {
	Metadata   Metadata   `yaml:"metadata"`
	Objects    Objects    `yaml:"objects"`
	Viewer     Viewer     `yaml:"viewer"`
	Simulation Simulation `yaml:"simulation"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Objects struct {
	Inline   []Object `yaml:"inline,omitempty"`
	FromFile string   `yaml:"from_file,omitempty"`

	// Number of trailing Inline entries that were merged in from FromFile
	fromFileCount int
}

// Object is one wall, mirror, target or marker in the scene.
type Object struct {
	ID       string     `yaml:"id" json:"id"`
	Kind     string     `yaml:"kind" json:"kind"`         // wall, mirror, target, viewer or phantom
	Position [2]float64 `yaml:"position" json:"position"` // Center in meters
	Angle    float64    `yaml:"angle" json:"angle"`       // Orientation in degrees
	Width    float64    `yaml:"width" json:"width"`       // Meters along the orientation
	Depth    float64    `yaml:"depth,omitempty" json:"depth,omitempty"`
}

type Viewer struct {
	Position [2]float64 `yaml:"position"`
	Heading  float64    `yaml:"heading"` // Degrees, 0 is +X
}

type Simulation struct {
	MaxLength    float64 `yaml:"max_length"`
	MaxBounces   int     `yaml:"max_bounces,omitempty"`
	EscapeLength float64 `yaml:"escape_length,omitempty"`
	HitEpsilon   float64 `yaml:"hit_epsilon,omitempty"`
	Sweep        Sweep   `yaml:"sweep"`
}

type Sweep struct {
	Count     int     `yaml:"count"`
	HalfAngle float64 `yaml:"half_angle"` // Degrees either side of the viewer heading
	Workers   int     `yaml:"workers,omitempty"`
}
