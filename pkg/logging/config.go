package logging

const (
	BaseDataDir   = "data"
	LogsDir       = "logs"
	LogFileFormat = "2006-01-02.log"
	TimeFormat    = "2006-01-02 15:04:05"
)

// ProcessName names the log directory a process writes into.
type ProcessName string

const (
	WarmupProcess    ProcessName = "cqlwarm"
	DatastoreProcess ProcessName = "datastore"
	TestProcess      ProcessName = "test"
)

type LoggerConfig struct {
	// LogDir is the root for log files. Empty means BaseDataDir.
	LogDir        string
	ProcessName   ProcessName
	IsDevelopment bool

	// Rotation settings for the file sink. Zero values fall back to defaults.
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

func NewDefaultConfig(processName ProcessName) LoggerConfig {
	return LoggerConfig{
		LogDir:        BaseDataDir,
		ProcessName:   processName,
		IsDevelopment: true,
		MaxSizeMB:     50,
		MaxAgeDays:    30,
		MaxBackups:    10,
	}
}

func (c LoggerConfig) withDefaults() LoggerConfig {
	if c.LogDir == "" {
		c.LogDir = BaseDataDir
	}
	if c.ProcessName == "" {
		c.ProcessName = DatastoreProcess
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 50
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 30
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 10
	}
	return c
}
