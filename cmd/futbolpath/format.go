package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

const (
	formatJSONName  = "json"
	formatYAMLName  = "yaml"
	formatTableName = "table"
)

// resolveFormat picks the output format when --format was not given and
// rejects unknown values.
func resolveFormat() error {
	switch flagFmt {
	case "":
		flagFmt = defaultFormat(os.Stdout.Fd())
	case formatJSONName, formatYAMLName, formatTableName:
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or table)", flagFmt)
	}

	return nil
}

// defaultFormat is table for interactive terminals and json for pipes.
func defaultFormat(fd uintptr) string {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return formatTableName
	}

	return formatJSONName
}

func formatJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// formatYAML emits v as YAML keyed by its JSON field names.
func formatYAML(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)

	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}

			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}

		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)

	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}

	printRow(seps)

	for _, row := range rows {
		printRow(row)
	}
}

// output writes v in the selected format. table renders the table form; when
// it is nil the table format falls back to JSON.
func output(v any, table func()) error {
	switch flagFmt {
	case formatTableName:
		if table == nil {
			return formatJSON(v)
		}

		table()

		return nil
	case formatYAMLName:
		return formatYAML(v)
	default:
		return formatJSON(v)
	}
}
