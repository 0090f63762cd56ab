package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/toolgraphgo/internal/hcl"
	"github.com/vk/toolgraphgo/internal/traverse"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest writes the given workspace files into a temporary directory
// and creates an app instance configured to profile them. The manifest is
// written inside the same temporary directory; its path is returned.
func SetupAppTest(t *testing.T, files map[string]string, visitors ...traverse.Visitor) (*App, *SafeBuffer, string) {
	t.Helper()

	tmpDir := t.TempDir()
	workspaceDir := filepath.Join(tmpDir, "workspace")
	require.NoError(t, os.Mkdir(workspaceDir, 0755))

	for name, content := range files {
		path := filepath.Join(workspaceDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	manifestPath := filepath.Join(tmpDir, "toolchain_manifest.json")
	appConfig, err := NewConfig(Config{
		WorkspacePath: workspaceDir,
		ManifestPath:  manifestPath,
		LogFormat:     "text",
		LogLevel:      "debug",
		WorkerCount:   4,
		NoColor:       true,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	testApp := NewApp(logBuffer, appConfig, hcl.NewLoader(), visitors...)

	t.Cleanup(func() {
		if os.Getenv("TGGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer, manifestPath
}
