package cli

import (
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/prefixlog/handler"
	"github.com/philipp01105/prefixlog/handler/consolehandler"
	"github.com/philipp01105/prefixlog/handler/logrushandler"
	"github.com/philipp01105/prefixlog/handler/zaphandler"
	"github.com/philipp01105/prefixlog/handler/zerologhandler"
)

// sink is an output primitive plus whatever must run before exit.
type sink struct {
	out   any
	flush func()
}

// sinkFactory builds a sink writing to out and errOut. Sinks without a
// separate error stream write everything to out. Timestamps are left out
// so the output is reproducible.
type sinkFactory func(out, errOut io.Writer) sink

var sinks = map[string]sinkFactory{
	"console": func(out, errOut io.Writer) sink {
		return sink{out: consolehandler.New(consolehandler.ConsoleConfig{Writer: out, ErrWriter: errOut})}
	},
	"zap": func(out, _ io.Writer) sink {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.TimeKey = ""
		enc.EncodeLevel = zapcore.LowercaseLevelEncoder
		l := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(out), zap.DebugLevel))
		zo := zaphandler.New(l)
		return sink{out: zo, flush: func() { _ = zo.Sync() }}
	},
	"zerolog": func(out, _ io.Writer) sink {
		return sink{out: zerologhandler.New(zerolog.New(out).Level(zerolog.TraceLevel))}
	},
	"logrus": func(out, _ io.Writer) sink {
		l := logrus.New()
		l.SetOutput(out)
		l.SetLevel(logrus.TraceLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
		return sink{out: logrushandler.New(l)}
	},
	"slog": func(out, _ io.Writer) sink {
		h := slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: handler.LevelTrace,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		})
		return sink{out: handler.NewSlog(slog.New(h))}
	},
}

func sinkNames() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSink(name string, out, errOut io.Writer) (sink, error) {
	f, ok := sinks[name]
	if !ok {
		return sink{}, errors.Errorf("unknown sink %q (want one of %s)", name, strings.Join(sinkNames(), ", "))
	}
	s := f(out, errOut)
	if s.flush == nil {
		s.flush = func() {}
	}
	return s, nil
}
