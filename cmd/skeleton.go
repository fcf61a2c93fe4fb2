package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anton-mel/macro-extract/internal/domain"
	m "github.com/anton-mel/macro-extract/internal/model"
)

var skeletonWriteFlag bool
var skeletonCheckFlag bool

// skeletonCmd represents the skeleton command.
var skeletonCmd = newSkeletonCmd()

func newSkeletonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skeleton <file.rs>",
		Short: "Print the declaration skeleton of a source file",
		Long: `Print the skeleton generated from a source file: modules, structs, enums,
impl blocks and function signatures with empty bodies.

With --write the skeleton file is created or replaced unless it already
carries annotations. With --check the existing skeleton is compared with a
fresh one and a unified diff is printed when they differ.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Skeleton(cmd.Context(), domain.SkeletonArgs{
				Path:  m.Path(args[0]),
				Write: skeletonWriteFlag,
				Check: skeletonCheckFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&skeletonWriteFlag, writeFlagName, "w", false, "write the skeleton file")
	cmd.Flags().BoolVar(&skeletonCheckFlag, checkFlagName, false, "report drift between the skeleton and the source")
	cmd.MarkFlagsMutuallyExclusive(writeFlagName, checkFlagName)

	return cmd
}

func init() {
	rootCmd.AddCommand(skeletonCmd)
}
