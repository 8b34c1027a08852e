// Package aggregate implements the directory-to-text pipeline: resolve the
// input paths, walk directories, classify file content, and concatenate the
// textual files into a single tagged output document.
package aggregate

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Run executes the pipeline once. The output document is created fresh
// (truncating any previous one) before any input is touched; that create
// failing is the only error that aborts the run. Every path argument is
// then processed independently in order, and the number of inputs that
// failed is returned so the caller can reflect partial failure in the exit
// status. Silent skips (binary files, excluded subtrees) are not failures.
func Run(paths []string, cfg Config, logger *zap.Logger) (int, error) {
	out, err := os.Create(cfg.Output)
	if err != nil {
		logger.Error("Failed to create output document", zap.String("output", cfg.Output), zap.Error(err))
		return 0, fmt.Errorf("failed to create output document %s: %w", cfg.Output, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("Failed to close output document", zap.String("output", cfg.Output), zap.Error(cerr))
		}
	}()

	// Labels prefer a form relative to the working directory; when that
	// cannot be determined every label keeps its original form.
	base, err := os.Getwd()
	if err != nil {
		logger.Warn("Failed to determine working directory", zap.Error(err))
		base = ""
	}

	writer := bufio.NewWriter(out)
	emitter := NewEmitter(writer, base, cfg.SampleSize, Detect, logger)

	failures := 0
	for _, arg := range paths {
		info, statErr := os.Stat(arg)
		switch {
		case statErr != nil:
			logger.Warn("Path does not exist or cannot be accessed", zap.String("path", arg), zap.Error(statErr))
			failures++
		case info.IsDir():
			if walkErr := Walk(arg, cfg.ExcludedDirs, logger, func(path string) {
				if emitter.Emit(path) != nil {
					failures++
				}
			}); walkErr != nil {
				logger.Warn("Failed to traverse directory", zap.String("path", arg), zap.Error(walkErr))
				failures++
			}
		case info.Mode().IsRegular():
			if emitter.Emit(arg) != nil {
				failures++
			}
		default:
			logger.Warn("Path is neither a regular file nor a directory",
				zap.String("path", arg),
				zap.String("mode", info.Mode().String()))
			failures++
		}
	}

	if flushErr := writer.Flush(); flushErr != nil {
		logger.Error("Failed to flush output document", zap.String("output", cfg.Output), zap.Error(flushErr))
		failures++
	}

	// Printed even when every input failed and the document is empty.
	fmt.Printf("Wrote text file contents to '%s'\n", cfg.Output)
	return failures, nil
}
