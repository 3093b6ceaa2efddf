package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// Encode renders cfg as TOML with tables in alphabetical order.
// Keys inside a table keep struct definition order.
func Encode(cfg *Config) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return sortTOMLSections(buf.String()), nil
}

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
func WriteConfigOrdered(cfg *Config, path string) error {
	out, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders table blocks alphabetically by header. Lines
// before the first header stay on top.
func sortTOMLSections(content string) string {
	type block struct {
		name  string
		lines []string
	}

	var preamble []string
	var blocks []block
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{name: m[1], lines: []string{line}})
			continue
		}
		if len(blocks) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].name < blocks[j].name
	})

	var parts []string
	if head := strings.TrimRight(strings.Join(preamble, "\n"), "\n"); head != "" {
		parts = append(parts, head)
	}
	for _, b := range blocks {
		parts = append(parts, strings.TrimRight(strings.Join(b.lines, "\n"), "\n"))
	}

	out := strings.Join(parts, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out
}
