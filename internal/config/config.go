// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds orbit camera and clip plane settings. Every constant
// the transform math consumes lives here, never inline in the math.
type CameraConfig struct {
	FOVDegrees  float32 `yaml:"fov_degrees"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	MinZoom     float32 `yaml:"min_zoom"`
	MaxZoom     float32 `yaml:"max_zoom"`
	ZoomStep    float32 `yaml:"zoom_step"`
	StartOffset float32 `yaml:"start_offset"`
}

// ViewerConfig holds mesh loading settings.
type ViewerConfig struct {
	Model string `yaml:"model"` // Optional mesh path loaded at startup
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOVDegrees:  60.0,
			Near:        0.1,
			Far:         400.0,
			MinZoom:     1.0,
			MaxZoom:     1000.0,
			ZoomStep:    0.25,
			StartOffset: 200.0,
		},
		Viewer: ViewerConfig{
			Model: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
