// Command fdtgen is the reference embedding program for the fdt library:
// it reads a YAML device-tree description and writes the resulting DTB to
// a file. It is deliberately outside the fdt package's core, which treats
// CLI, file I/O, and logging as external collaborators rather than
// responsibilities of the builder itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	outputPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fdtgen",
		Short: "Build a Flattened Device Tree blob from a YAML description.",
		Long: `fdtgen reads a YAML document describing a device tree (nodes,
properties, and memory reservations) and writes the resulting DTB
(Flattened Device Tree blob) to an output file.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML device-tree description (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "out.dtb", "path to write the generated DTB")
	_ = rootCmd.MarkFlagRequired("config")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	sp := newSpinner(fmt.Sprintf("Generating %s", outputPath))

	blob, err := Generate(cfg, log, sp)
	if err != nil {
		return err
	}

	//nolint:gosec // G306: DTBs are not sensitive, default perms are fine
	if err := os.WriteFile(outputPath, blob, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outputPath, len(blob))
	return nil
}
