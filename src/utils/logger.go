package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var mu sync.Mutex
var loggers = make(map[string]*logHandle)

var defaultLevel = logrus.InfoLevel
var colorful = SupportANSIColor(os.Stderr.Fd())

type logHandle struct {
	*logrus.Logger

	name     string
	colorful bool
}

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvl := e.Level
	lvlStr := strings.ToUpper(lvl.String())
	if l.colorful {
		var color int
		switch lvl {
		case logrus.DebugLevel, logrus.TraceLevel:
			color = 34 // blue
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		default:
			color = 32 // green
		}
		lvlStr = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvlStr)
	}
	const timeFormat = "2006/01/02 15:04:05.000000"
	str := fmt.Sprintf("%s %s[%d] <%v>: %v",
		e.Time.Format(timeFormat),
		l.name,
		os.Getpid(),
		lvlStr,
		strings.TrimRight(e.Message, "\n"))
	if len(e.Data) > 0 {
		keys := make([]string, 0, len(e.Data))
		for k := range e.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			str += fmt.Sprintf(" %s=%v", k, e.Data[k])
		}
	}
	return []byte(str + "\n"), nil
}

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: logrus.New(), name: name, colorful: colorful}
	l.Formatter = l
	l.Out = os.Stderr
	l.Level = defaultLevel
	return l
}

// GetLogger returns a logger mapped to `name`
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// SetLogLevel sets Level for all loggers
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	defaultLevel = lvl
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	colorful = false
	for _, logger := range loggers {
		logger.colorful = false
	}
}

// SetOutput redirects all loggers, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}

func SupportANSIColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) && runtime.GOOS != "windows"
}
