package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-platform/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract plain text from a resume document",
	Long:  `Extract plain text from a PDF, DOC, or DOCX resume and print it to stdout. Useful for checking what the upload endpoint would see.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := extract.Extract(filepath.Base(path), data)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	fmt.Fprintf(cmd.ErrOrStderr(), "%d words extracted\n", extract.WordCount(text))
	return nil
}
