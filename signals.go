package zenkaku

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalRegistered     = capitan.NewSignal("zenkaku.variant.registered", "Variant registered")
	SignalEncodeComplete = capitan.NewSignal("zenkaku.encode.complete", "Encode operation finished")
	SignalDecodeComplete = capitan.NewSignal("zenkaku.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyVariant  = capitan.NewStringKey("variant")
	KeyInBytes  = capitan.NewIntKey("in_bytes")
	KeyOutBytes = capitan.NewIntKey("out_bytes")
	KeyDigits   = capitan.NewIntKey("digits")
	KeyDuration = capitan.NewDurationKey("duration")
)

// emitRegistered emits an event when a codec is registered.
func emitRegistered(ctx context.Context, variant string) {
	capitan.Emit(ctx, SignalRegistered,
		KeyVariant.Field(variant),
	)
}

// emitEncode emits an event when an encode finishes.
func emitEncode(ctx context.Context, variant string, in, out, digits int, duration time.Duration) {
	capitan.Emit(ctx, SignalEncodeComplete,
		KeyVariant.Field(variant),
		KeyInBytes.Field(in),
		KeyOutBytes.Field(out),
		KeyDigits.Field(digits),
		KeyDuration.Field(duration),
	)
}

// emitDecode emits an event when a decode finishes.
func emitDecode(ctx context.Context, variant string, in, out, digits int, duration time.Duration) {
	capitan.Emit(ctx, SignalDecodeComplete,
		KeyVariant.Field(variant),
		KeyInBytes.Field(in),
		KeyOutBytes.Field(out),
		KeyDigits.Field(digits),
		KeyDuration.Field(duration),
	)
}
