package xcconfig

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures no goroutines leak across this package's tests. The
// downstream-rebuild broadcast (Configuration.broadcastDownstream) is a
// plain synchronous walk today, but the fan-out shape is exactly the
// kind of thing that grows a worker pool under later optimization, so
// this guards against that regressing into a leak silently.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
