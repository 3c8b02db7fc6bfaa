package tui

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/routine/internal/schedule"
)

// DebugLogger logs TUI state, keystrokes, and editor events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	logger  *zap.Logger
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "routine-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	return initDebugLoggerAt(enabled, DebugLogPath)
}

func initDebugLoggerAt(enabled bool, path string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "event"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		logger:  logger,
		enabled: true,
	}

	debugLog.log("DEBUG_START",
		zap.String("log_file", path),
		zap.String("time", time.Now().Format(time.RFC3339)),
	)

	return nil
}

// CloseDebugLogger flushes and closes the debug log.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.logger != nil {
		debugLog.log("DEBUG_END", zap.String("time", time.Now().Format(time.RFC3339)))
		_ = debugLog.logger.Sync()
		debugLog.logger = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, fields ...zap.Field) {
	if d == nil || !d.enabled || d.logger == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.logger.Debug(event, append([]zap.Field{zap.Int("seq", d.seq)}, fields...)...)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS",
		zap.String("key", msg.String()),
		zap.Int("type", int(msg.Type)),
	)
}

// LogFocusChange logs a focus change between sheet sections.
func LogFocusChange(from, to focusArea, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FOCUS_CHANGE",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("reason", reason),
	)
}

// LogDayToggle logs a day selection change.
func LogDayToggle(day time.Weekday, active bool, days schedule.DaySet) {
	if !debugEnabled() {
		return
	}
	debugLog.log("DAY_TOGGLE",
		zap.Stringer("day", day),
		zap.Bool("active", active),
		zap.Int("mask", days.Mask()),
	)
}

// LogWindowChange logs a time window change and whether the other end moved.
func LogWindowChange(field focusArea, before, after schedule.Window) {
	if !debugEnabled() {
		return
	}
	debugLog.log("WINDOW_CHANGE",
		zap.Stringer("field", field),
		zap.Stringer("before", before),
		zap.Stringer("after", after),
	)
}

// LogValidation logs the outcome of a confirm attempt.
func LogValidation(result schedule.ValidationResult) {
	if !debugEnabled() {
		return
	}
	debugLog.log("VALIDATION",
		zap.Stringer("result", result),
		zap.Stringer("focus", result.Focus()),
	)
}

// LogConfirm logs a schedule handed to the receiver.
func LogConfirm(mode schedule.Mode, s *schedule.WeeklySchedule) {
	if !debugEnabled() || s == nil {
		return
	}
	debugLog.log("CONFIRM",
		zap.Stringer("mode", mode),
		zap.Int("request_code", mode.RequestCode()),
		zap.String("id", s.ID),
		zap.Stringer("days", s.Days),
		zap.Stringer("window", s.Window),
	)
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR",
		zap.String("context", context),
		zap.Error(err),
	)
}
