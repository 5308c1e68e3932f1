package config

import "flag"

// Overrides are command-line settings applied over every config file
type Overrides struct {
	ConfigPath string
	Debug      bool
	Width      int
	Height     int
	LogLevel   string
	LogFile    string
}

// RegisterFlags binds the override flags to fs
func RegisterFlags(fs *flag.FlagSet) *Overrides {
	o := &Overrides{}
	fs.StringVar(&o.ConfigPath, "config", "", "Path to a YAML file merged over the built-in config")
	fs.BoolVar(&o.Debug, "debug", false, "Show the debug overlay and log at debug level")
	fs.IntVar(&o.Width, "width", 0, "Window width")
	fs.IntVar(&o.Height, "height", 0, "Window height")
	fs.StringVar(&o.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&o.LogFile, "log-file", "", "Also write logs to this rotating file")
	return o
}

// Apply writes the set overrides into cfg
func (o *Overrides) Apply(cfg *GameConfig) {
	if o.Debug {
		cfg.Debug = true
		cfg.Logging.Level = "debug"
	}
	if o.Width > 0 {
		cfg.Window.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Window.Height = o.Height
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}
}
