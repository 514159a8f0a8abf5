package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"promptparser/internal/config"
	"promptparser/internal/parser"
	"promptparser/pkg/domain"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

// parseInput is a prompt read from the command line, stdin or a file.
type parseInput struct {
	source string
	file   bool
	text   string
	result domain.ParseResult
}

// parseCommand constructs the 'parse' subcommand that parses prompts locally
// without a database and prints their weighted phrases.
func parseCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parses weight annotations of prompts given as arguments, files or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, _ := cmd.Flags().GetStringSlice("file")
			output, _ := cmd.Flags().GetString("output")

			switch output {
			case outputJSON, outputYAML, outputText:
			default:
				return fmt.Errorf("unknown output format %q", output)
			}

			// local files are not subject to the request size limit
			opts := parser.NewOptions(cfg)
			opts.MaxInputBytes = 0
			p, err := parser.New(nil, opts)
			if err != nil {
				return fmt.Errorf("could not create parser: %w", err)
			}

			inputs, err := readInputs(cmd.InOrStdin(), args, files)
			if err != nil {
				return err
			}
			if err := parseAll(cmd.Context(), p, inputs, cfg.Parser.Concurrency); err != nil {
				return err
			}

			return writeResults(cmd.OutOrStdout(), output, inputs)
		},
	}

	cmd.Flags().StringSliceP("file", "f", nil, "Prompt file to parse, may be repeated")
	cmd.Flags().StringP("output", "o", outputText, "Output format: json, yaml or text")

	return cmd
}

// readInputs collects the prompts to parse. Files win over arguments, and
// stdin is read only when neither is given. File contents are read later.
func readInputs(stdin io.Reader, args, files []string) ([]parseInput, error) {
	switch {
	case len(files) > 0:
		inputs := make([]parseInput, len(files))
		for i, f := range files {
			inputs[i] = parseInput{source: f, file: true}
		}

		return inputs, nil
	case len(args) > 0:
		return []parseInput{{source: "args", text: strings.Join(args, " ")}}, nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}

		return []parseInput{{source: "stdin", text: strings.TrimRight(string(b), "\r\n")}}, nil
	}
}

// parseAll parses inputs concurrently, reading file inputs first. At most
// limit inputs are handled at once.
func parseAll(ctx context.Context, p parser.Parser, inputs []parseInput, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range inputs {
		in := &inputs[i]
		g.Go(func() error {
			if in.file {
				b, err := os.ReadFile(in.source)
				if err != nil {
					return fmt.Errorf("could not read %s: %w", in.source, err)
				}
				in.text = string(b)
			}

			res, err := p.Parse(ctx, in.text)
			if err != nil {
				return fmt.Errorf("could not parse %s: %w", in.source, err)
			}
			in.result = res

			return nil
		})
	}

	return g.Wait() //nolint: wrapcheck
}

func writeResults(w io.Writer, output string, inputs []parseInput) error {
	switch output {
	case outputJSON:
		for _, in := range inputs {
			e := &jx.Encoder{}
			e.ObjStart()
			e.FieldStart("source")
			e.Str(in.source)
			e.FieldStart("result")
			in.result.Encode(e)
			e.ObjEnd()
			if _, err := fmt.Fprintln(w, e.String()); err != nil {
				return fmt.Errorf("could not write result: %w", err)
			}
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, in := range inputs {
			if err := enc.Encode(struct {
				Source string             `yaml:"source"`
				Result domain.ParseResult `yaml:"result"`
			}{in.source, in.result}); err != nil {
				return fmt.Errorf("could not encode result: %w", err)
			}
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("could not flush results: %w", err)
		}
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for i, in := range inputs {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "# %s\n", in.source)
			fmt.Fprintf(tw, "cleaned:\t%s\n", in.result.CleanedText)
			fmt.Fprintln(tw, "PHRASE\tWEIGHT\tPOSITION\tOFFSET")
			for j, phrase := range in.result.Phrases {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
					phrase,
					strconv.FormatFloat(in.result.Weights[j], 'g', -1, 64),
					in.result.Positions[j],
					in.result.Offsets[j])
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("could not write results: %w", err)
		}
	}

	return nil
}
