// Command catalogschema writes the JSON schema used to validate catalog files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trouvaiilx/arcane-survivors/internal/defs"
)

func main() {
	out := flag.String("out", "", "path to write the JSON schema")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(2)
	}
	if err := write(*out); err != nil {
		fmt.Fprintf(os.Stderr, "catalogschema: %v\n", err)
		os.Exit(1)
	}
}

// write replaces path atomically through a temp file.
func write(path string) error {
	data, err := defs.SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp schema: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace schema: %w", err)
	}
	return nil
}
