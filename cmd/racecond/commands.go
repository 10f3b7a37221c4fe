package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/padraicbc/racecond/restrictions"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// maxLineBytes bounds a single conditions line read from a file or stdin.
const maxLineBytes = 1 << 20

func parseCmd() *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse race conditions into restriction records",
		Long: `Parse race conditions into restriction records.

With arguments, the arguments are joined into a single text. Otherwise every
non-blank line of --file (or stdin) is parsed as its own text. JSON output is
one record per line; YAML output is one document per record.

Example:
  racecond parse "Mares, Four Years Olds And Upward."
  racecond parse --file conditions.txt --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatJSON, formatYAML)
			}
			texts, err := readTexts(cmd, args, file)
			if err != nil {
				return err
			}

			records := make([]restrictions.Restrictions, len(texts))
			for i, text := range texts {
				records[i] = restrictions.Parse(text)
			}
			return writeRecords(cmd.OutOrStdout(), format, records)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read one conditions text per line from this file")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")
	return cmd
}

func normalizeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "normalize [text]",
		Short: "Print the canonical form the grammars match against",
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := readTexts(cmd, args, file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, text := range texts {
				if _, err := fmt.Fprintln(out, restrictions.Normalize(text)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read one conditions text per line from this file")
	return cmd
}

func readTexts(cmd *cobra.Command, args []string, file string) ([]string, error) {
	if len(args) > 0 {
		if file != "" {
			return nil, fmt.Errorf("use either text arguments or --file, not both")
		}
		return []string{strings.Join(args, " ")}, nil
	}

	in := cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open conditions file: %w", err)
		}
		defer f.Close()
		in = f
	}
	return readLines(in)
}

func readLines(r io.Reader) ([]string, error) {
	var texts []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			texts = append(texts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read conditions: %w", err)
	}
	return texts, nil
}

func writeRecords(w io.Writer, format string, records []restrictions.Restrictions) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	}
	return nil
}
