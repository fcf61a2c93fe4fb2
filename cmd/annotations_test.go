package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anton-mel/macro-extract/internal/domain"
	m "github.com/anton-mel/macro-extract/internal/model"
)

func TestAnnotationsCmd_DefaultFormat(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("Annotations", mock.Anything, mock.MatchedBy(func(args domain.AnnotationsArgs) bool {
		return args.Path == m.Path("src/lib.macros") && args.Format == m.FormatText
	})).Return(nil)

	cmd, _ := newTestRootCmd(newAnnotationsCmd())
	cmd.SetArgs([]string{"annotations", "src/lib.macros"})

	require.NoError(t, cmd.Execute())
}

func TestAnnotationsCmd_Formats(t *testing.T) {
	tests := []struct {
		flag string
		want m.ReportFormat
	}{
		{"json", m.FormatJSON},
		{"YAML", m.FormatYAML},
		{"text", m.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)
			mockWorkflow.On("Annotations", mock.Anything, mock.MatchedBy(func(args domain.AnnotationsArgs) bool {
				return args.Format == tt.want
			})).Return(nil)

			cmd, _ := newTestRootCmd(newAnnotationsCmd())
			cmd.SetArgs([]string{"annotations", "--format", tt.flag, "src/lib.rs"})

			require.NoError(t, cmd.Execute())
		})
	}
}

func TestAnnotationsCmd_InvalidFormat(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := newTestRootCmd(newAnnotationsCmd())
	cmd.SetArgs([]string{"annotations", "--format", "toml", "src/lib.rs"})

	require.ErrorContains(t, cmd.Execute(), `invalid report format "toml"`)
}
