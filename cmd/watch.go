package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anton-mel/macro-extract/internal/domain"
	m "github.com/anton-mel/macro-extract/internal/model"
)

var watchModeFlag string
var watchIgnoreFlag []string

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Maintain skeletons and reports while sources change",
		Long: `Watch a directory tree and react to changes of Rust sources:
a new source gets an empty skeleton, a modified source gets a generated
skeleton until annotations are added, and from then on every change is
verified and the verdicts are written to the report file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := viper.GetString(watchRootKey)
			if len(args) == 1 {
				root = args[0]
			}

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Watch(cmd.Context(), domain.WatchArgs{Root: m.Path(root)})
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&watchModeFlag, modeFlagName, "m", viper.GetString(reportModeKey), "what to write for annotated skeletons (verify, dump)")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), reportModeKey)

	cmd.Flags().StringArrayVarP(&watchIgnoreFlag, ignoreFlagName, "x", viper.GetStringSlice(watchIgnoreKey), "directory names to skip (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(ignoreFlagName), watchIgnoreKey)
}
