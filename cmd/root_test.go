package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "macro-extract", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useTempLog(t)

	cmd, output := newTestRootCmd(newVersionCmd())
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "companion skeleton file")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	for _, name := range []string{"watch", "skeleton", "annotations", "verify", "init", "version"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}

	for _, flag := range []string{plainFlagName, verboseFlagName, logFileFlagName, reportFormatFlagName} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestWireDependencies(t *testing.T) {
	originalWorkflow := workflow
	t.Cleanup(func() { workflow = originalWorkflow })
	workflow = nil

	cmd, _ := newTestRootCmd(newVerifyCmd())

	wf, err := currentWorkflow(cmd)
	require.NoError(t, err)
	assert.NotNil(t, wf)
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, parser)
	assert.NotNil(t, printer)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, notifier)
	assert.NotNil(t, orchestrator)

	again, err := currentWorkflow(cmd)
	require.NoError(t, err)
	assert.Same(t, wf, again)
}

func TestWireDependencies_InvalidFormat(t *testing.T) {
	originalWorkflow := workflow
	originalFormat := viper.GetString(reportFormatKey)
	t.Cleanup(func() {
		workflow = originalWorkflow
		viper.Set(reportFormatKey, originalFormat)
	})
	workflow = nil
	viper.Set(reportFormatKey, "toml")

	cmd, _ := newTestRootCmd(newVerifyCmd())

	_, err := currentWorkflow(cmd)
	require.ErrorContains(t, err, `invalid report format "toml"`)
	assert.Nil(t, workflow)
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			require.NotNil(t, cmd.Context())
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
