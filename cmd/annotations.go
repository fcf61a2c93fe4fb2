package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anton-mel/macro-extract/internal/domain"
	m "github.com/anton-mel/macro-extract/internal/model"
)

var annotationsFormatFlag string

// annotationsCmd represents the annotations command.
var annotationsCmd = newAnnotationsCmd()

func newAnnotationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotations <file>",
		Short: "Dump the annotation map of a skeleton",
		Long: `Print every annotation of a skeleton grouped by the qualified name of the
declaration it belongs to. The argument may be the skeleton or its source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseReportFormat(annotationsFormatFlag)
			if err != nil {
				return err
			}

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Annotations(cmd.Context(), domain.AnnotationsArgs{
				Path:   m.Path(args[0]),
				Format: format,
			})
		},
	}

	cmd.Flags().StringVarP(&annotationsFormatFlag, formatFlagName, "f", string(m.FormatText), "output format (text, json, yaml)")

	return cmd
}

func init() {
	rootCmd.AddCommand(annotationsCmd)
}
