package config

const (
	// DefaultProjectPath is the directory output paths are resolved against
	DefaultProjectPath = "."
	// DefaultConfigFile is the optional YAML config file name
	DefaultConfigFile = "algocat.yaml"
	// DefaultOutputFile is the report file name without extension
	DefaultOutputFile = "report"
	// DefaultOutputDir is the default output directory
	DefaultOutputDir = "storage"
	// DefaultOutputFormat is the report file format
	DefaultOutputFormat = "json"
	// DefaultProcessors is the default number of workers
	DefaultProcessors = 4
	// DefaultHistoryDriver is the database/sql driver used for run history
	DefaultHistoryDriver = "sqlite"
	// DefaultHistoryFile is the sqlite history database file name
	DefaultHistoryFile = "history.db"
	// DefaultHistoryLimit is how many runs the history command shows
	DefaultHistoryLimit = 10
	// DefaultLogLevel keeps the structured log quiet next to the console output
	DefaultLogLevel = "warn"
)

// DefaultSkipGroups are the case groups left out of a run unless configured otherwise
var DefaultSkipGroups = []string{}

// OutputFormats are the supported report file formats
var OutputFormats = []string{"json", "yaml"}
