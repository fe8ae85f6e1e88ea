package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	JSON    = "json"
	LOGFMT  = "logfmt"
	CONSOLE = "console"
)

// Config selects the encoding, level and sink of every logger in the
// process.
type Config struct {
	// Format is one of json, logfmt or console. Empty means console.
	Format string
	// Level is a zap level name. Empty means info.
	Level string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

type backend struct {
	core zapcore.Core
}

var (
	current atomic.Value
	mutex   sync.Mutex
)

func init() {
	current.Store(&backend{core: zapcore.NewNopCore()})
}

// Init replaces the process wide logging backend. Loggers obtained before
// Init observe the change.
func Init(c Config) error {
	core, err := newCore(c)
	if err != nil {
		return err
	}
	mutex.Lock()
	defer mutex.Unlock()
	current.Store(&backend{core: core})
	return nil
}

// Reset silences all loggers.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	current.Store(&backend{core: zapcore.NewNopCore()})
}

func newCore(c Config) (zapcore.Core, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
			return nil, errors.Wrapf(err, "logging: invalid level %q", c.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case LOGFMT:
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	case CONSOLE, "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("logging: unknown format %q", c.Format)
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	return zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level), nil
}

// core forwards to whatever backend is current at write time.
type core struct {
	fields []zapcore.Field
}

func (c *core) backend() zapcore.Core {
	return current.Load().(*backend).core
}

func (c *core) Enabled(l zapcore.Level) bool {
	return c.backend().Enabled(l)
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	return &core{fields: append(merged, fields...)}
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	return c.backend().Write(e, append(all, fields...))
}

func (c *core) Sync() error {
	return c.backend().Sync()
}

// Logger is a named sugared logger.
type Logger struct {
	*zap.SugaredLogger
}

// MustGetLogger returns a logger that writes through the process wide
// backend under name.
func MustGetLogger(name string) *Logger {
	if name == "" {
		panic("logging: empty logger name")
	}
	l := zap.New(&core{}, zap.AddCaller()).Named(name)
	return &Logger{SugaredLogger: l.Sugar()}
}

func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}
