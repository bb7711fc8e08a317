// Package logger wraps zerolog with process-wide defaults and request-scoped
// child loggers
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"padala/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the root logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* settings through the raw config view, which does not
// log and therefore cannot cycle back into this package
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	lowered := func(key, def string) string { return strings.ToLower(env.Get(key, def)) }
	return Options{
		Level:       lowered("LEVEL", "debug"),
		Format:      lowered("FORMAT", "console"),
		Service:     env.Get("SERVICE", ""),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

// Logger is the project-wide logging type; an alias so call sites stay
// decoupled from zerolog
type Logger = zerolog.Logger

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger; only the first call takes effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		log := zerolog.New(sink(opt)).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
		log = enrich(log, opt)
		if opt.SampleEvery > 1 {
			log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}

		root.Store(&log)
		inited.Store(true)
	})
}

// sink picks the output writer, wrapping it for console format
func sink(opt Options) io.Writer {
	out := io.Writer(os.Stdout)
	if opt.Writer != nil {
		out = opt.Writer
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return out
}

// enrich attaches caller, build, service, and static fields
func enrich(log zerolog.Logger, opt Options) zerolog.Logger {
	fields := log.With()
	if opt.WithCaller {
		fields = fields.Caller()
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields = fields.Str("go_version", bi.GoVersion)
	}

	named := map[string]string{"service": opt.Service, "component": opt.Component}
	for k, v := range named {
		if v != "" {
			fields = fields.Str(k, v)
		}
	}
	for k, v := range opt.StaticFields {
		fields = fields.Str(k, v)
	}
	return fields.Logger()
}

var levelNames = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
	"panic":   zerolog.PanicLevel,
}

// parseLevel maps a name to its zerolog level; unknown names mean debug
func parseLevel(s string) zerolog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return zerolog.DebugLevel
}

type ctxKey string

const keyRequestID ctxKey = "req_id"

// WithRequest stores the request id on ctx for later enrichment via C
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// C returns a child logger carrying the request_id found on ctx, if any
func C(ctx context.Context) *Logger {
	reqID, _ := ctx.Value(keyRequestID).(string)
	if reqID == "" {
		return Get()
	}
	child := Get().With().Str("request_id", reqID).Logger()
	return &child
}

// Named returns a child logger tagged with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	child := Get().With().Str("component", component).Logger()
	return &child
}
