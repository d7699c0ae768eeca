package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rem-code-s/proposal-review-helper/internal/report"
	"github.com/sirupsen/logrus"
)

// Writer renders a report in a specific format.
type Writer interface {
	Write(w io.Writer, rep *report.Report) error
}

// ForFormat returns a writer for the requested format. Condensed writers
// skip per-commit diff rendering.
func ForFormat(format string, condensed bool) (Writer, error) {
	switch format {
	case "html":
		return &HTMLWriter{Condensed: condensed}, nil
	case "markdown", "md":
		return &MarkdownWriter{Condensed: condensed}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Ext returns the file extension for a format.
func Ext(format string) string {
	if format == "html" {
		return "html"
	}
	return "md"
}

// WriteReport renders rep to outPath, creating parent directories as needed.
// A path of "-" writes to stdout. File errors are fatal to the run; a failed
// write may leave a partial file behind.
func WriteReport(rep *report.Report, format string, condensed bool, outPath string) error {
	writer, err := ForFormat(format, condensed)
	if err != nil {
		return err
	}

	if outPath == "-" {
		return writer.Write(os.Stdout, rep)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := writer.Write(f, rep); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"path":   outPath,
		"format": format,
	}).Info("report written")
	return nil
}
