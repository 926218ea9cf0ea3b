package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an app wired to in-memory streams. stdin feeds the
// app's input; the returned buffers capture stdout and stderr.
func SetupAppTest(t *testing.T, cfg *Config, stdin string) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	errBuffer := &SafeBuffer{}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	testApp := NewApp(strings.NewReader(stdin), outBuffer, errBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("NODETREE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), errBuffer.String())
		}
	})

	return testApp, outBuffer, errBuffer
}
