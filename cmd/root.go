// Package cmd provides the root command and CLI setup for macro-extract.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anton-mel/macro-extract/internal/adapter"
	"github.com/anton-mel/macro-extract/internal/controller"
	"github.com/anton-mel/macro-extract/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var parser adapter.RustFileAdapter
var printer adapter.Printer
var reportStore adapter.ReportStore
var notifier adapter.ChangeNotifier
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// plainFlag forces line-oriented output even on a terminal.
var plainFlag bool

// verboseFlag lowers the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

// reportFormatFlag selects the serialisation of written reports.
var reportFormatFlag string

func init() {
	configureRootFlags(rootCmd)
}

const rootLongDescription = `macro-extract checks that Rust functions keep the contracts declared for
them in a companion skeleton file.

For every lib.rs a lib.macros skeleton mirrors the declarations without
bodies. Annotations such as #[mutates(field)] and #[calls(function)] placed
on skeleton functions are verified against the implementation, and the
verdicts are written to lib.report.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "macro-extract",
		Short:        "Rust contract checker",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(uiPlainKey), "disable the interactive terminal view")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), uiPlainKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVar(&reportFormatFlag, reportFormatFlagName, viper.GetString(reportFormatKey), "format of written reports (text, json, yaml)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFormatFlagName), reportFormatKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the shared workflow, wiring it from the
// configuration on first use.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	if err := wireDependencies(cmd); err != nil {
		return nil, err
	}

	return workflow, nil
}

// wireDependencies builds the adapters, orchestrator and workflow from the
// current configuration.
func wireDependencies(cmd *cobra.Command) error {
	format, err := parseReportFormat(viper.GetString(reportFormatKey))
	if err != nil {
		return err
	}

	mode, err := parseReportMode(viper.GetString(reportModeKey))
	if err != nil {
		return err
	}

	artifacts := configuredArtifacts()

	ui = controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout) && !viper.GetBool(uiPlainKey))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	parser = adapter.NewRustFileAdapter()
	printer = adapter.NewPrinter()
	reportStore = adapter.NewReportStore(fsAdapter, format)
	notifier = adapter.NewChangeNotifier(viper.GetStringSlice(watchIgnoreKey))
	orchestrator = domain.NewOrchestrator(fsAdapter, parser, printer, reportStore, domain.OrchestratorConfig{
		Extensions: configuredExtensions(),
		Artifacts:  artifacts,
		Mode:       mode,
	})
	workflow = domain.NewWorkflow(
		fsAdapter,
		parser,
		printer,
		reportStore,
		notifier,
		ui,
		orchestrator,
		artifacts,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
