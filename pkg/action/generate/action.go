package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/soda3x/barista/pkg/generator"
)

// Run reads the configured source file, brews the requested
// boilerplate, and writes it to the output file or stdout. It returns
// the resolved class name so callers can record it. The source file is
// never modified.
func Run(o *generator.Options) (string, error) {
	if o.SourceFile == "" {
		return "", fmt.Errorf("no source file provided")
	}

	data, err := os.ReadFile(o.SourceFile)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}

	gen, err := generator.NewWithOpts(o)
	if err != nil {
		return "", err
	}

	class, out, err := gen.Run(string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", o.SourceFile, err)
	}

	if o.OutFile == "" {
		_, err = os.Stdout.WriteString(out)
		return class, err
	}

	if dir := filepath.Dir(o.OutFile); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err = os.WriteFile(o.OutFile, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	return class, nil
}
