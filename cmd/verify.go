package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anton-mel/macro-extract/internal/domain"
	m "github.com/anton-mel/macro-extract/internal/model"
)

var verifyWriteFlag bool

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Verify sources against their skeletons",
		Long: `Verify the contracts of a source file, or of every source below a
directory that has a skeleton, and print the verdicts.

The command fails when a clause is unsatisfied or an annotated function is
missing from the implementation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString(watchRootKey)
			if len(args) == 1 {
				path = args[0]
			}

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Verify(cmd.Context(), domain.VerifyArgs{
				Path:       m.Path(path),
				Write:      verifyWriteFlag,
				Extensions: configuredExtensions(),
				Skip:       viper.GetStringSlice(watchIgnoreKey),
			})
		},
	}

	cmd.Flags().BoolVarP(&verifyWriteFlag, writeFlagName, "w", false, "also write the report files")

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
