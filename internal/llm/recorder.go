package llm

import "log/slog"

// Recorder observes completion calls for experiment tracking. Implementations
// must not affect the call's outcome.
type Recorder interface {
	Record(call string, inputs, outputs map[string]any)
}

type NopRecorder struct{}

func (NopRecorder) Record(string, map[string]any, map[string]any) {}

// SlogRecorder logs call traces at debug level.
type SlogRecorder struct{}

func (SlogRecorder) Record(call string, inputs, outputs map[string]any) {
	slog.Debug("completion call recorded", "call", call, "inputs", inputs, "outputs", outputs)
}
