package constants

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.tenets/logs/tenets.log
	CLILogFileName = "tenets.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global tenets configuration file.
	// This file is located in the tenets home directory.
	GlobalConfigName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides (TENETS_*).
	EnvPrefix = "TENETS"

	// HomeEnvVar overrides the tenets home directory.
	HomeEnvVar = "TENETS_HOME"
)
