package main

import (
	"encoding/json"
	"fmt"

	"github.com/fadilmartias/interview-report/internal/util"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <report.pdf>",
	Short: "Print the page count and text of a rendered report",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var (
	inspectPreviewFile string
	inspectPreviewPage int
)

func init() {
	inspectCmd.Flags().StringVar(&inspectPreviewFile, "preview", "", "Also rasterize a page to this PNG file")
	inspectCmd.Flags().IntVar(&inspectPreviewPage, "page", 1, "Page to rasterize with --preview (1-based)")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	summary, err := util.InspectPDF(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if inspectPreviewFile != "" {
		if err := util.RenderPagePNG(args[0], inspectPreviewPage-1, inspectPreviewFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote preview of page %d to %s\n", inspectPreviewPage, inspectPreviewFile)
	}
	return nil
}
