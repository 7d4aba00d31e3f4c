package server

import (
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warning", "error"
}

// WebLogger implements core.Logger by forwarding to the server log and
// copying each message to a per-render console channel
type WebLogger struct {
	renderID    string
	base        core.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, base core.Logger, consoleChan chan<- ConsoleMessage) *WebLogger {
	if base == nil {
		base = core.NewNopLogger()
	}
	return &WebLogger{
		renderID:    renderID,
		base:        base,
		consoleChan: consoleChan,
	}
}

func (wl *WebLogger) DebugEnabled() bool    { return wl.base.DebugEnabled() }
func (wl *WebLogger) SetDebug(enabled bool) { wl.base.SetDebug(enabled) }

func (wl *WebLogger) Debugf(format string, args ...any) {
	if !wl.DebugEnabled() {
		return
	}
	wl.base.Debugf("[%s] "+format, append([]any{wl.renderID}, args...)...)
	wl.send("debug", format, args...)
}

func (wl *WebLogger) Infof(format string, args ...any) {
	wl.base.Infof("[%s] "+format, append([]any{wl.renderID}, args...)...)
	wl.send("info", format, args...)
}

func (wl *WebLogger) Warnf(format string, args ...any) {
	wl.base.Warnf("[%s] "+format, append([]any{wl.renderID}, args...)...)
	wl.send("warning", format, args...)
}

func (wl *WebLogger) Errorf(format string, args ...any) {
	wl.base.Errorf("[%s] "+format, append([]any{wl.renderID}, args...)...)
	wl.send("error", format, args...)
}

// send delivers to the console channel without blocking
func (wl *WebLogger) send(level, format string, args ...any) {
	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}
