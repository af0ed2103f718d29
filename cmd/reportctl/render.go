package main

import (
	"fmt"
	"os"

	"github.com/fadilmartias/interview-report/internal/config"
	"github.com/fadilmartias/interview-report/internal/dto"
	"github.com/fadilmartias/interview-report/internal/service"
	"github.com/fadilmartias/interview-report/internal/usecase"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a report PDF from a request JSON file",
	Long:  "Reads a /generate-report request body from a file and writes the rendered PDF. Cover assets come from the same REPORT_* settings as the server.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to request JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output PDF (default Report_<interview_id>.pdf)")

	if err := renderCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	body, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	req, err := dto.ParseReportRequest(body)
	if err != nil {
		return err
	}

	logger := config.LoadLogger()
	defer logger.Sync()

	assembler := service.NewReportAssembler(config.LoadReportConfig(), logger)
	uc := usecase.NewReportUsecase(assembler, nil, logger)

	result, err := uc.Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	out := renderOutputFile
	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.Document.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages, %d questions)\n", out, result.Document.Pages, result.RecordCount)
	for _, d := range result.Document.Degraded {
		fmt.Fprintf(cmd.OutOrStdout(), "  omitted %s on page %d: %v\n", d.Element, d.Page, d.Err)
	}
	return nil
}
