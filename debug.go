package kui

import (
	"fmt"
	"io"
	"os"
)

// debugLog is the sink named by the KUI_DEBUG environment variable, or
// nil when debug logging is off.
var debugLog io.Writer = openDebugLog()

func openDebugLog() io.Writer {
	path := os.Getenv("KUI_DEBUG")
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil
	}
	return f
}

func debugPrintf(format string, args ...interface{}) {
	if debugLog == nil {
		return
	}
	fmt.Fprintf(debugLog, format, args...)
}

// debugKey describes a key for the debug log: its name, numeric code,
// and for raw bytes the visual form.
func debugKey(k KeyCode) string {
	if k.IsRawByte() {
		return fmt.Sprintf("%s (%d, %s)", k, int(k), visEncode(string([]byte{byte(k)})))
	}
	return fmt.Sprintf("%s (%d)", k, int(k))
}
