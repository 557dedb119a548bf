package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hqlgen/hqlgen/internal/logger"
	"github.com/hqlgen/hqlgen/internal/manifest"
)

var (
	generateOutDir string
)

var GenerateCmd = &cobra.Command{
	Use:   "generate <manifest.yaml> [<manifest.yaml>...]",
	Short: "Compile statement manifests to SQL",
	Long: `Compile one or more YAML statement manifests into Impala-dialect SQL.

Each manifest's statements are compiled in order and joined with
";\n\n". Without --out-dir the SQL is written to stdout in argument
order; with --out-dir each manifest produces a .sql file named after
it. Any error aborts the run before output is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVar(&generateOutDir, "out-dir", "",
		"Directory to write one .sql file per manifest (default: stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	results := make([]string, len(args))

	// Manifests are independent; compile them concurrently but emit in
	// argument order.
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			sql, err := generateFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = sql
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if generateOutDir == "" {
		for _, sql := range results {
			fmt.Println(sql)
		}
		return nil
	}

	if err := os.MkdirAll(generateOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, path := range args {
		outPath := filepath.Join(generateOutDir, sqlFileName(path))
		if err := os.WriteFile(outPath, []byte(results[i]+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logger.Get().Info("wrote statements", "manifest", path, "output", outPath)
	}
	return nil
}

// generateFile parses one manifest and compiles its statements into a
// single SQL text.
func generateFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return "", err
	}
	statements, err := m.Build()
	if err != nil {
		return "", err
	}
	logger.Get().Debug("compiling manifest", "path", path, "statements", len(statements))

	texts := make([]string, len(statements))
	for i, stmt := range statements {
		text, err := stmt.Compile()
		if err != nil {
			return "", fmt.Errorf("statement %d: %w", i, err)
		}
		texts[i] = text
	}
	return strings.Join(texts, ";\n\n") + ";", nil
}

// sqlFileName maps a manifest path to its output file name.
func sqlFileName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".sql"
}
