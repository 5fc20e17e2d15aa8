package sensitive

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for sensitive-data events. Rendering itself is pure and emits
// nothing; signals fire at construction, registration and scrub
// boundaries.
var (
	SignalRendererRegistered = capitan.NewSignal("sensitive.renderer.registered", "Renderer registered for a contained type")
	SignalScrubberCreated    = capitan.NewSignal("sensitive.scrubber.created", "Scrubber instantiated")
	SignalScrubStart         = capitan.NewSignal("sensitive.scrub.start", "Scrub operation beginning")
	SignalScrubComplete      = capitan.NewSignal("sensitive.scrub.complete", "Scrub operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
	KeyMaskedCount   = capitan.NewIntKey("masked_count")
	KeyRedactedCount = capitan.NewIntKey("redacted_count")
)

// emitRendererRegistered emits an event when renderers are registered for a type.
func emitRendererRegistered(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalRendererRegistered,
		KeyTypeName.Field(typeName),
	)
}

// emitScrubberCreated emits an event when a scrubber is created.
func emitScrubberCreated(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalScrubberCreated,
		KeyTypeName.Field(typeName),
	)
}

// emitScrubStart emits an event when a scrub begins.
func emitScrubStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalScrubStart,
		KeyTypeName.Field(typeName),
	)
}

// emitScrubComplete emits an event when a scrub finishes.
func emitScrubComplete(ctx context.Context, typeName string, duration time.Duration, masked, redacted int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyMaskedCount.Field(masked),
		KeyRedactedCount.Field(redacted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalScrubComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalScrubComplete, fields...)
	}
}
