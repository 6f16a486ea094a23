package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger  = newLogger()
	noColor bool
	mu      sync.RWMutex
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&formatter{})
	return l
}

// formatter renders entries as "[DEBUG] 15:04:05.000 message key=value".
type formatter struct{}

// Format implements logrus.Formatter.
func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	mu.RLock()
	useColor := !noColor
	mu.RUnlock()

	var b bytes.Buffer
	level := "[" + strings.ToUpper(e.Level.String()) + "]"
	timestamp := e.Time.Format("15:04:05.000")
	if useColor {
		fmt.Fprintf(&b, "%s%s%s %s%s%s %s", colorCyan, level, colorReset, colorGray, timestamp, colorReset, e.Message)
	} else {
		fmt.Fprintf(&b, "%s %s %s", level, timestamp, e.Message)
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if useColor {
			fmt.Fprintf(&b, " %s%s%s=%v", colorCyan, k, colorReset, e.Data[k])
		} else {
			fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
		}
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	if enable {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output, stderr by default.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	logger.Debugf("=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	logger.WithField(key, value).Debug("value")
}
