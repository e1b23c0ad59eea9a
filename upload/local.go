package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalSink writes files under Dir and serves them from BaseURL.
type LocalSink struct {
	Dir     string
	BaseURL string
}

func NewLocalSink(dir string) *LocalSink {
	return &LocalSink{Dir: dir, BaseURL: "/uploads"}
}

func (l *LocalSink) Put(_ context.Context, filename, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(l.Dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.BaseURL + "/" + filename, nil
}
