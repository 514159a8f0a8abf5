package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptparser/internal/config"
	"promptparser/pkg/domain"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Parser.MaxInputBytes = 1024
	cfg.Parser.Concurrency = 2

	return cfg
}

func runParse(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := parseCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestParseCommand_ArgsJSON(t *testing.T) {
	out, err := runParse(t, testConfig(), "", "-o", "json", "a", "(red fox)++", "b")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"source": "args",
		"result": {
			"cleanedText": "a red fox b",
			"phrases": ["red fox"],
			"weights": [1.21],
			"positions": [2],
			"offsets": [2]
		}
	}`, out)
}

func TestParseCommand_StdinText(t *testing.T) {
	out, err := runParse(t, testConfig(), "cat-- and dog++\n")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "# stdin", lines[0])
	require.Equal(t, []string{"cleaned:", "cat", "and", "dog"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"PHRASE", "WEIGHT", "POSITION", "OFFSET"}, strings.Fields(lines[2]))
	require.Equal(t, []string{"cat", "0.81", "0", "0"}, strings.Fields(lines[3]))
	require.Equal(t, []string{"dog", "1.21", "8", "8"}, strings.Fields(lines[4]))
}

func TestParseCommand_FilesYAMLInOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, text := range []string{"one++", "(two words)0.5", "plain"} {
		path := filepath.Join(dir, "prompt"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
		files = append(files, "-f", path)
	}

	out, err := runParse(t, testConfig(), "", append([]string{"-o", "yaml"}, files...)...)
	require.NoError(t, err)

	type doc struct {
		Source string             `yaml:"source"`
		Result domain.ParseResult `yaml:"result"`
	}
	var docs []doc
	dec := yaml.NewDecoder(strings.NewReader(out))
	for {
		var d doc
		if err := dec.Decode(&d); err != nil {
			break
		}
		docs = append(docs, d)
	}

	require.Len(t, docs, 3)
	require.Equal(t, files[1], docs[0].Source)
	require.Equal(t, []string{"one"}, docs[0].Result.Phrases)
	require.Equal(t, []float64{1.21}, docs[0].Result.Weights)
	require.Equal(t, files[3], docs[1].Source)
	require.Equal(t, "two words", docs[1].Result.CleanedText)
	require.Equal(t, []float64{0.5}, docs[1].Result.Weights)
	require.Equal(t, files[5], docs[2].Source)
	require.Equal(t, "plain", docs[2].Result.CleanedText)
	require.Empty(t, docs[2].Result.Phrases)
}

func TestParseCommand_Errors(t *testing.T) {
	t.Run("unknown output", func(t *testing.T) {
		_, err := runParse(t, testConfig(), "", "-o", "xml", "x")
		require.ErrorContains(t, err, `unknown output format "xml"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runParse(t, testConfig(), "", "-f", filepath.Join(t.TempDir(), "missing.txt"))
		require.ErrorContains(t, err, "could not read")
	})
}

func TestParseCommand_IgnoresMaxInputBytes(t *testing.T) {
	cfg := testConfig()
	cfg.Parser.MaxInputBytes = 4

	path := filepath.Join(t.TempDir(), "large.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x ", 1<<16)+"end++"), 0o600))

	out, err := runParse(t, cfg, "", "-o", "yaml", "-f", path)
	require.NoError(t, err)

	var doc struct {
		Result domain.ParseResult `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, []string{"end"}, doc.Result.Phrases)
	require.Equal(t, []int{1 << 17}, doc.Result.Positions)
}
