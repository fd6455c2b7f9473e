package benchmark

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sinklab/logbench/harness"
)

// ---------------------------------------------------------------------------
// Helpers – identical JSON sink for every framework
// ---------------------------------------------------------------------------

func newZapLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.InfoLevel)
	return zap.New(core)
}

func newSlogLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func newLogrusLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

func newZerologLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// runCompetitive emits the harness record shape (message + incrementing
// int field) through each framework against the given writer factory.
func runCompetitive(b *testing.B, writer func(b *testing.B) io.Writer) {
	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(writer(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(harness.Message, zap.Int("iteration", i))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(writer(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(harness.Message, slog.Int("iteration", i))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(writer(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithField("iteration", i).Info(harness.Message)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(writer(b))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Int("iteration", i).Msg(harness.Message)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 1 – no I/O (io.Discard), pure encoding and dispatch cost
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Discard(b *testing.B) {
	runCompetitive(b, func(b *testing.B) io.Writer {
		return io.Discard
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – real file output, equal conditions
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	runCompetitive(b, func(b *testing.B) io.Writer {
		f, err := os.CreateTemp(b.TempDir(), "bench-*.log")
		if err != nil {
			b.Fatal(err)
		}
		b.Cleanup(func() { f.Close() })
		return f
	})
}
