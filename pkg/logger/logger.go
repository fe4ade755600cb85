package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
	WarnLogger  *log.Logger

	debugEnabled bool
	mu           sync.RWMutex
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", flags)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", flags)
	DebugLogger = log.New(os.Stdout, "DEBUG: ", flags)
	WarnLogger = log.New(os.Stdout, "WARN: ", flags)
	debugEnabled = os.Getenv("ENVIRONMENT") == "development"
}

// Configure switches debug output on for development environments.
func Configure(environment string) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = environment == "development"
}

// SetOutput redirects every level to w. Tests use it to silence or capture logs.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
	DebugLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
}

func Info(format string, v ...interface{}) {
	InfoLogger.Output(2, sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	ErrorLogger.Output(2, sprintf(format, v...))
}

func Warn(format string, v ...interface{}) {
	WarnLogger.Output(2, sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if enabled {
		DebugLogger.Output(2, sprintf(format, v...))
	}
}

func sprintf(format string, v ...interface{}) string {
	if len(v) == 0 {
		return format
	}
	return fmt.Sprintf(format, v...)
}
