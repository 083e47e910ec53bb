package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path
	DefaultTestPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".gtp"
	// DefaultReportDir is the default directory for XML reports
	DefaultReportDir = ".gtp/reports"
	// DefaultWorkers is the default number of parallel workers
	DefaultWorkers = 4
	// DefaultGoBinary is the toolchain binary used to run tests
	DefaultGoBinary = "go"
	// ConfigFileName is the optional per-project configuration file
	ConfigFileName = "gtp.yaml"
)

// DefaultSkipDirs are the default directories to ignore when scanning for tests
var DefaultSkipDirs = []string{
	"vendor",
	"node_modules",
	"testdata",
}
