package cmd

import (
	"fmt"

	"github.com/devantler-tech/mimegen/pkg/registry"
	"github.com/devantler-tech/mimegen/pkg/svc/tablegen"
	"github.com/devantler-tech/mimegen/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info.
func NewRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mimegen",
		Short: "Generate a C extension to MIME type lookup table from mime.types",
		Long: "mimegen reads " + registry.DefaultPath + " from the working directory and writes a static,\n" +
			"NULL-terminated C table pairing every file extension with its MIME type to stdout.\n\n" +
			"Entries keep the order of the registry. Nothing is written when the registry\n" +
			"cannot be read or a value cannot be encoded as a C string literal.",
		Args:          cobra.NoArgs,
		RunE:          handleRootRunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE generates the table into the command's output stream.
func handleRootRunE(cmd *cobra.Command, _ []string) error {
	service := tablegen.New(tablegen.WithWarnings(cmd.ErrOrStderr()))

	summary, err := service.Generate(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to generate MIME table: %w", err)
	}

	notify.Successf(
		cmd.ErrOrStderr(),
		"generated %d entries for %d MIME types from %s",
		summary.Entries,
		summary.MIMETypes,
		registry.DefaultPath,
	)

	return nil
}
