package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MasWag/hyppau-fixtures/internal/config"
	"github.com/MasWag/hyppau-fixtures/internal/logging"
	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Generate every instance listed in a YAML manifest",
	Long: `Reads a manifest of named instances and writes one JSON document per
instance to the output directory. The whole manifest is validated before
anything is written.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out-dir")
		if err := runBatch(args[0], outDir); err != nil {
			fmt.Printf("Batch failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().String("out-dir", "", "Output directory (overrides the manifest's out_dir)")
}

func runBatch(manifestPath, outDir string) error {
	log := logging.New(slog.LevelInfo)

	m, err := config.Load(manifestPath)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = m.OutDir
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, in := range m.Instances {
		kind, err := generator.ParseKind(in.Kind)
		if err != nil {
			return err
		}
		params, err := in.GeneratorParams()
		if err != nil {
			return err
		}
		doc, err := generator.Generate(kind, params)
		if err != nil {
			return fmt.Errorf("instance %q: %w", in.Name, err)
		}

		path := filepath.Join(outDir, in.Name+".json")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := writeAndClose(f, doc); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info("generated instance",
			"name", in.Name,
			"kind", in.Kind,
			"states", doc.NumStates(),
			"transitions", len(doc.Transitions),
			"path", path,
		)
	}
	return nil
}
