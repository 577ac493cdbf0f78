package config

// Config is the lattice configuration file.
type Config struct {
	Theme   string        `yaml:"theme" validate:"omitempty,oneof=light dark"`
	Density string        `yaml:"density" validate:"omitempty,oneof=compact comfortable spacious"`
	Log     LogConfig     `yaml:"log"`
	Overlay OverlayConfig `yaml:"overlay"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	// File receives log output. Logging is discarded when empty, since the
	// terminal belongs to the UI.
	File          string `yaml:"file"`
	HumanReadable bool   `yaml:"human_readable"`
}

// OverlayConfig holds the overlay defaults used by the showcase.
type OverlayConfig struct {
	ViewportPadding     int    `yaml:"viewport_padding" validate:"gte=0,lte=32"`
	PopoverOffset       int    `yaml:"popover_offset" validate:"gte=0,lte=32"`
	PopoverPlacement    string `yaml:"popover_placement" validate:"omitempty,placement"`
	CloseOnEsc          bool   `yaml:"close_on_esc"`
	CloseOnOverlayClick bool   `yaml:"close_on_overlay_click"`
	DrawerSide          string `yaml:"drawer_side" validate:"omitempty,oneof=left right top bottom"`
	DrawerSize          int    `yaml:"drawer_size" validate:"gte=0,lte=200"`
}

// Default returns the configuration used when no file is given. Distances
// are in terminal cells.
func Default() Config {
	return Config{
		Theme:   "light",
		Density: "comfortable",
		Log: LogConfig{
			Level: "info",
		},
		Overlay: OverlayConfig{
			ViewportPadding:     1,
			PopoverOffset:       1,
			PopoverPlacement:    "bottom-start",
			CloseOnEsc:          true,
			CloseOnOverlayClick: true,
			DrawerSide:          "right",
			DrawerSize:          36,
		},
	}
}
