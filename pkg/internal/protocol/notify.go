package protocol

import (
	"fmt"
	"sync/atomic"

	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// ConnectLogger attaches loggers to the encoder.
func (e *Encoder) ConnectLogger(l ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, logger := range l {
		if logger == nil {
			continue
		}
		e.loggers = append(e.loggers, logger)
		atomic.AddInt32(&e.loggerCount, 1)
	}
}

// hasLoggers reports whether any logger is attached, without taking a lock.
func (e *Encoder) hasLoggers() bool {
	return atomic.LoadInt32(&e.loggerCount) != 0
}

// NotifyLoggers formats a message and fans it out to every attached logger
// whose level admits it.
func (e *Encoder) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	notify(e.snapshotLoggers(), level, format, args...)
}

func (e *Encoder) snapshotLoggers() []types.Logger {
	if !e.hasLoggers() {
		return nil
	}
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	if len(e.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(e.loggers))
	copy(out, e.loggers)
	return out
}

// ConnectLogger attaches loggers to the decoder.
func (d *Decoder) ConnectLogger(l ...types.Logger) {
	d.loggersLock.Lock()
	defer d.loggersLock.Unlock()
	for _, logger := range l {
		if logger == nil {
			continue
		}
		d.loggers = append(d.loggers, logger)
		atomic.AddInt32(&d.loggerCount, 1)
	}
}

// hasLoggers reports whether any logger is attached, without taking a lock.
func (d *Decoder) hasLoggers() bool {
	return atomic.LoadInt32(&d.loggerCount) != 0
}

// NotifyLoggers formats a message and fans it out to every attached logger
// whose level admits it.
func (d *Decoder) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	notify(d.snapshotLoggers(), level, format, args...)
}

func (d *Decoder) snapshotLoggers() []types.Logger {
	if !d.hasLoggers() {
		return nil
	}
	d.loggersLock.Lock()
	defer d.loggersLock.Unlock()
	if len(d.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(d.loggers))
	copy(out, d.loggers)
	return out
}

// Never hold a logger lock while invoking logger methods.
func notify(loggers []types.Logger, level types.LogLevel, format string, args ...interface{}) {
	if len(loggers) == 0 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg)
		case types.InfoLevel:
			logger.Info(msg)
		case types.WarnLevel:
			logger.Warn(msg)
		case types.ErrorLevel:
			logger.Error(msg)
		case types.DPanicLevel:
			logger.DPanic(msg)
		case types.PanicLevel:
			logger.Panic(msg)
		case types.FatalLevel:
			logger.Fatal(msg)
		}
	}
}
