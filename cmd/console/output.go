package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/learnhub/admin-console/internal/domain/model"
)

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// newFlagSet returns a flag set with the shared --json flag registered.
func newFlagSet(name string, asJSON *bool) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.BoolVar(asJSON, "json", false, "Print the raw result as JSON")
	return fs
}

// table renders rows under header; each row must have as many cells as header.
func table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}
	for _, row := range rows {
		if err := writeln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// render prints v as JSON when asJSON is set, otherwise as the rows built by toRows.
func render(w io.Writer, asJSON bool, v any, header []string, toRows func() [][]string) error {
	if asJSON {
		return printJSON(w, v)
	}
	rows := toRows()
	if len(rows) == 0 {
		return writeln(w, "(none)")
	}
	return table(w, header, rows)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func formatAmount(v float64, currency string) string {
	s := fmt.Sprintf("%.2f", v)
	if currency != "" {
		s += " " + currency
	}
	return s
}

// readDocument loads a file from disk and guesses its content type.
func readDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return model.Document{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// announce reports a created or changed entity. The backend may omit the
// entity, in which case only the action is printed.
func announce[T any](w io.Writer, asJSON bool, v *T, action string, describe func(T) string) error {
	if asJSON {
		return printJSON(w, v)
	}
	if v == nil {
		return writeln(w, action)
	}
	return writef(w, "%s %s\n", action, describe(*v))
}
