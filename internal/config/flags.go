package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagWater    = flag.String("water", "", "Water provider: flat, waves, or noise")
	flagLevel    = flag.Float64("level", 0, "Water level override")
	flagDuration = flag.Float64("duration", 0, "Demo duration in seconds")
	flagMesh     = flag.String("mesh", "", "Path to a cached proxy mesh")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWater != "" {
		cfg.Water.Provider = *flagWater
	}
	if *flagLevel != 0 {
		cfg.Water.Level = *flagLevel
	}
	if *flagDuration > 0 {
		cfg.Demo.Duration = *flagDuration
	}
	if *flagMesh != "" {
		cfg.Demo.MeshPath = *flagMesh
	}
}
