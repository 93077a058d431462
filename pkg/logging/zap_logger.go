package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	sugarLogger *zap.SugaredLogger
	rotator     *SequentialRotator
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger builds a logger that writes to a daily, size-rotated file under
// <LogDir>/logs/<process>/. Development mode also writes colored output to stdout.
func NewZapLogger(config LoggerConfig) (*ZapLogger, error) {
	config = config.withDefaults()

	logDir := filepath.Join(config.LogDir, LogsDir, string(config.ProcessName))
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, time.Now().Format(LogFileFormat))
	rotator := NewSequentialRotator(logPath, config.MaxSizeMB, config.MaxAgeDays, config.MaxBackups)

	level := getLogLevel(config.IsDevelopment)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileEncoderConfig()),
		zapcore.AddSync(rotator),
		level,
	)

	core := fileCore
	if config.IsDevelopment {
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig()),
			zapcore.Lock(os.Stdout),
			level,
		)
		core = zapcore.NewTee(consoleCore, fileCore)
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).
		With(zap.String("process", string(config.ProcessName)))

	return &ZapLogger{
		sugarLogger: logger.Sugar(),
		rotator:     rotator,
	}, nil
}

func getLogLevel(isDevelopment bool) zapcore.Level {
	if isDevelopment {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeFormat)
	return cfg
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeFormat)
	return cfg
}

func (z *ZapLogger) Debug(msg string, tags ...any) {
	z.sugarLogger.Debugw(msg, tags...)
}

func (z *ZapLogger) Info(msg string, tags ...any) {
	z.sugarLogger.Infow(msg, tags...)
}

func (z *ZapLogger) Warn(msg string, tags ...any) {
	z.sugarLogger.Warnw(msg, tags...)
}

func (z *ZapLogger) Error(msg string, tags ...any) {
	z.sugarLogger.Errorw(msg, tags...)
}

func (z *ZapLogger) Fatal(msg string, tags ...any) {
	z.sugarLogger.Fatalw(msg, tags...)
}

func (z *ZapLogger) Debugf(template string, args ...interface{}) {
	z.sugarLogger.Debugf(template, args...)
}

func (z *ZapLogger) Infof(template string, args ...interface{}) {
	z.sugarLogger.Infof(template, args...)
}

func (z *ZapLogger) Warnf(template string, args ...interface{}) {
	z.sugarLogger.Warnf(template, args...)
}

func (z *ZapLogger) Errorf(template string, args ...interface{}) {
	z.sugarLogger.Errorf(template, args...)
}

func (z *ZapLogger) Fatalf(template string, args ...interface{}) {
	z.sugarLogger.Fatalf(template, args...)
}

func (z *ZapLogger) With(tags ...any) Logger {
	return &ZapLogger{
		sugarLogger: z.sugarLogger.With(tags...),
		rotator:     z.rotator,
	}
}

// Close flushes buffered entries and closes the log file.
func (z *ZapLogger) Close() error {
	// Sync fails on stdout for some terminals; the file close below is what matters.
	_ = z.sugarLogger.Sync()
	return z.rotator.Close()
}
