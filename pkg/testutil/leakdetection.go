package testutil

import (
	"go.uber.org/goleak"
)

// GoLeakIgnores returns the goroutines that may outlive a command run without
// being a leak.
func GoLeakIgnores() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreAnyFunction("go.opentelemetry.io/otel/sdk/trace.(*batchSpanProcessor).processQueue"),
		goleak.IgnoreTopFunction("github.com/fsnotify/fsnotify.(*inotify).readEvents"),
	}
}
