package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// DeviceIDKey is the context key for the calling device's identity
	DeviceIDKey ContextKey = "device_id"

	// DeviceIDHeader carries the anonymous device identity. Account-level
	// authentication lives in the managed backend, not in this service, so
	// a stable per-device UUID is all the identity sessions need.
	DeviceIDHeader = "X-Device-ID"
)

// DeviceID resolves the caller's device identity from the X-Device-ID header,
// minting a fresh one when the header is absent. The resolved ID is placed on
// the request context and echoed back so clients can persist it.
func DeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.Header.Get(DeviceIDHeader)
		if _, err := uuid.Parse(deviceID); err != nil {
			deviceID = uuid.NewString()
		}

		w.Header().Set(DeviceIDHeader, deviceID)
		ctx := context.WithValue(r.Context(), DeviceIDKey, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetDeviceID extracts the device ID from the request context
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok && deviceID != ""
}
