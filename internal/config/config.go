// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Robot      RobotConfig      `yaml:"robot"`
	Scene      SceneConfig      `yaml:"scene"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	Mode             string     `yaml:"mode"` // "free" or "orbit"
	Position         [3]float32 `yaml:"position"`
	MoveSpeed        float32    `yaml:"move_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	OrbitRadius      float32    `yaml:"orbit_radius"`
	OrbitHeight      float32    `yaml:"orbit_height"`
	OrbitSpeed       float32    `yaml:"orbit_speed"`
	OrbitTarget      [3]float32 `yaml:"orbit_target"`
	FOV              float32    `yaml:"fov"` // degrees
}

// RobotConfig holds robot control settings.
type RobotConfig struct {
	ArmStep float32 `yaml:"arm_step"` // degrees per frame while held
	BaseYaw float32 `yaml:"base_yaw"` // degrees
}

// SceneConfig holds the starting scene.
type SceneConfig struct {
	Initial int `yaml:"initial"` // 1 ground, 2 space, 3 jungle
}

// LightingConfig holds the single directional and single point light.
type LightingConfig struct {
	Enabled       bool       `yaml:"enabled"`
	Ambient       [3]float32 `yaml:"ambient"`
	Shininess     float32    `yaml:"shininess"`
	DirLightDir   [3]float32 `yaml:"dir_light_dir"`
	DirLightColor [3]float32 `yaml:"dir_light_color"`
	PointPos      [3]float32 `yaml:"point_pos"`
	PointColor    [3]float32 `yaml:"point_color"`
}

// ScreenshotConfig holds screenshot capture settings.
type ScreenshotConfig struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"`    // png, webp, bmp or tga
	MaxWidth int    `yaml:"max_width"` // 0 keeps the drawable size
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's built-in values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Robot Demo",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Backend:    "sdl",
		},
		Camera: CameraConfig{
			Mode:             "free",
			Position:         [3]float32{0, 1, 4},
			MoveSpeed:        2.5,
			MouseSensitivity: 0.1,
			OrbitRadius:      4,
			OrbitHeight:      1.6,
			OrbitSpeed:       0.4,
			OrbitTarget:      [3]float32{0, 0.9, 0},
			FOV:              45,
		},
		Robot: RobotConfig{
			ArmStep: 1.5,
			BaseYaw: 0,
		},
		Scene: SceneConfig{
			Initial: 1,
		},
		Lighting: LightingConfig{
			Enabled:       true,
			Ambient:       [3]float32{0.18, 0.18, 0.18},
			Shininess:     64,
			DirLightDir:   [3]float32{0.4, 0.3, 0.2},
			DirLightColor: [3]float32{1.0, 0.65, 0.25},
			PointPos:      [3]float32{0, 1.2, 0},
			PointColor:    [3]float32{0.2, 0.6, 1.0},
		},
		Screenshot: ScreenshotConfig{
			Dir:      "screenshots",
			Format:   "png",
			MaxWidth: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
