package checks

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MergeOutbox syncs published Turtle files from the outbox into the
// vocabulary directory. New files are copied; an existing file is replaced
// by the outbox version, which is authoritative after a successful
// pipeline run. Non-Turtle entries are skipped.
func MergeOutbox(outboxDir, vocabDir string) error {
	for _, dir := range []string{outboxDir, vocabDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("directory %s does not exist", dir)
		}
	}

	entries, err := os.ReadDir(outboxDir)
	if err != nil {
		return fmt.Errorf("read outbox %s: %w", outboxDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".ttl") {
			slog.Debug("skipping outbox entry", "name", e.Name())
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		src := filepath.Join(outboxDir, name)
		dst := filepath.Join(vocabDir, name)
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("merge %s: %w", name, err)
		}
		slog.Info("merged vocabulary file", "file", name, "into", vocabDir)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
