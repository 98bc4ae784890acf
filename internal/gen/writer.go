package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating it
// if needed and overwriting files of the same name. When clean is set, every
// non-directory entry directly inside the output directory is deleted first;
// subdirectories and their contents are left alone.
func WriteFiles(files []GeneratedFile, outputDir string, clean bool) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if clean {
		if err := cleanDir(outputDir); err != nil {
			return err
		}
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// cleanDir removes the non-directory entries directly inside dir.
func cleanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("cleaning output directory: %w", err)
		}
	}

	return nil
}
