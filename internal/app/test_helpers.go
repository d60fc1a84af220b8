package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreloop/resdepot/internal/registry"
	"github.com/coreloop/resdepot/internal/testutil"
)

// SetupAppTest creates an App instance for system testing, wired to an
// in-memory log buffer. Debug logging is forced so assertions can match on
// any line; set RESDEPOT_TEST_LOGS=true to dump the captured output.
func SetupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err, "test app config must be valid")

	logBuffer := &testutil.SafeBuffer{}
	testApp := New(logBuffer, validated, modules...)

	t.Cleanup(func() {
		if os.Getenv("RESDEPOT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
