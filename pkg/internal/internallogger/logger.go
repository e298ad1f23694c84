package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerOption func(*zap.Config, *zapcore.Level, *int) // Updated to include caller skip management

type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerOn    bool
	callerDepth int
	mu          sync.Mutex
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	var level zapcore.Level
	var callerDepth int = 3 // Default caller depth

	// Apply each provided option to the configuration
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	z := &ZapLoggerAdapter{
		atomicLevel: zap.NewAtomicLevelAt(level),
		encConfig:   standardEncoderConfig(),
		baseFields:  fieldsFromMap(config.InitialFields),
		callerOn:    true,
		callerDepth: callerDepth,
		sinks:       make(map[string]sinkEntry),
	}
	if config.Development {
		z.encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	z.baseCore = zapcore.NewCore(zapcore.NewJSONEncoder(z.encConfig), zapcore.Lock(os.Stdout), z.atomicLevel)

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}
