package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted keeps unformatted output in a sidecar file next
// to the intended location, so template bugs can be inspected. Best
// effort; never makes generation fail harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep it a .go extension for editor highlighting without colliding
	// with real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	p := filepath.Join(outDir, debugName)

	return os.WriteFile(p, content, filePerm)
}
