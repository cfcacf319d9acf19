// pkg/logging/logging.go - timestamped file logging for the GWA Toolbox installer.
//
// Every run writes a gwa_install_YYYYMMDD_HHMMSS.log file to the system
// temporary directory, narrating each action at info/debug/error level.
// An optional JSON events sidecar is written when debug logging is enabled.

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of the log message.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the string representation of the LogLevel.
func (ll LogLevel) String() string {
	switch ll {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a LogLevel. Unknown values
// fall back to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// logEntry is the JSON shape written to the events sidecar.
type logEntry struct {
	Time       int64                  `json:"time"`
	Timestamp  string                 `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Options configures the singleton logger.
type Options struct {
	Dir           string // log directory, defaults to os.TempDir()
	Level         LogLevel
	EnableConsole bool // mirror log lines to stdout
	EnableJSON    bool // write a .events.jsonl sidecar
}

// Logger encapsulates the file logging functionality.
type Logger struct {
	mu           sync.Mutex
	logger       *log.Logger
	logLevel     LogLevel
	logFile      *os.File
	jsonFile     *os.File
	logPath      string
	sessionStart time.Time
}

// singleton instance and sync.Once for thread-safe initialization
var (
	instance *Logger
	once     sync.Once
)

// Init initializes the singleton Logger. It must be called before any
// logging functions are used.
func Init(opts Options) error {
	var initErr error
	once.Do(func() {
		instance, initErr = newLogger(opts)
	})
	return initErr
}

func newLogger(opts Options) (*Logger, error) {
	sessionStart := time.Now()
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	timestamp := sessionStart.Format("20060102_150405")
	logPath := filepath.Join(dir, fmt.Sprintf("gwa_install_%s.log", timestamp))
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		logLevel:     opts.Level,
		logFile:      logFile,
		logPath:      logPath,
		sessionStart: sessionStart,
	}

	if opts.EnableJSON {
		jsonPath := filepath.Join(dir, fmt.Sprintf("gwa_install_%s.events.jsonl", timestamp))
		l.jsonFile, err = os.OpenFile(jsonPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logFile.Close()
			return nil, fmt.Errorf("failed to open JSON log file: %w", err)
		}
	}

	if opts.EnableConsole {
		enableColors()
		l.logger = log.New(io.MultiWriter(os.Stdout, logFile), "", 0)
	} else {
		l.logger = log.New(logFile, "", 0)
	}

	return l, nil
}

// LogPath returns the path of the current run's log file, or "" when the
// logger is not initialized. Error notifications include it so the operator
// can find the full narration.
func LogPath() string {
	if instance == nil {
		return ""
	}
	return instance.logPath
}

// SetLevel changes the active log level.
func SetLevel(level LogLevel) {
	if instance == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.logLevel = level
}

// Close closes the log files if they are open.
func Close() {
	if instance == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()

	if instance.logFile != nil {
		if err := instance.logFile.Close(); err != nil {
			fmt.Printf("Failed to close log file: %v\n", err)
		}
		instance.logFile = nil
	}
	if instance.jsonFile != nil {
		if err := instance.jsonFile.Close(); err != nil {
			fmt.Printf("Failed to close JSON log file: %v\n", err)
		}
		instance.jsonFile = nil
	}
}

// logMessage is the core logging method that writes to all configured outputs.
func (l *Logger) logMessage(level LogLevel, message string, keyValues ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logger == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: %s %s %v\n", level.String(), message, keyValues)
		return
	}

	if level > l.logLevel {
		return
	}

	ts := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %-5s %s", ts, level.String(), message)
	for i := 0; i < len(keyValues); i += 2 {
		if i+1 < len(keyValues) {
			line += fmt.Sprintf(" %v=%v", keyValues[i], keyValues[i+1])
		}
	}
	if level == LevelError {
		line = "\n----------------------------------------\n" + line
	}
	l.logger.Println(line)

	if l.jsonFile != nil {
		l.writeJSONLog(level, message, keyValues)
	}
	l.syncFiles()
}

func (l *Logger) writeJSONLog(level LogLevel, message string, keyValues []interface{}) {
	properties := make(map[string]interface{})
	for i := 0; i < len(keyValues); i += 2 {
		if i+1 < len(keyValues) {
			properties[fmt.Sprintf("%v", keyValues[i])] = keyValues[i+1]
		}
	}
	now := time.Now()
	entry := logEntry{
		Time:       now.Unix(),
		Timestamp:  now.Format(time.RFC3339),
		Level:      level.String(),
		Message:    message,
		Properties: properties,
	}
	if data, err := json.Marshal(entry); err == nil {
		l.jsonFile.WriteString(string(data) + "\n")
	}
}

func (l *Logger) syncFiles() {
	if l.logFile != nil {
		l.logFile.Sync()
	}
	if l.jsonFile != nil {
		l.jsonFile.Sync()
	}
}

// Info logs informational messages.
func Info(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: INFO %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelInfo, message, keyValues...)
}

// Debug logs debug messages.
func Debug(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: DEBUG %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelDebug, message, keyValues...)
}

// Warn logs warning messages.
func Warn(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: WARN %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelWarn, message, keyValues...)
}

// Error logs error messages.
func Error(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: ERROR %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelError, message, keyValues...)
}
