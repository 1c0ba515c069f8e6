package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/timefang/pkg/config"
	"github.com/Sumatoshi-tech/timefang/pkg/worklog"
)

// capturingExecutor records the arguments the command resolved.
type capturingExecutor struct {
	path string
	cfg  *config.Config
}

func (ce *capturingExecutor) run(path string, cfg *config.Config, _, _ io.Writer) error {
	ce.path = path
	ce.cfg = cfg

	return nil
}

func executeReport(t *testing.T, exec reportExecutor, args ...string) error {
	t.Helper()

	cmd := newReportCommandWithDeps(exec)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestReportCommand_Defaults(t *testing.T) {
	captured := &capturingExecutor{}

	require.NoError(t, executeReport(t, captured.run))

	assert.Equal(t, ".", captured.path)
	assert.Equal(t, worklog.FormatText, captured.cfg.Report.Format)
	assert.Zero(t, captured.cfg.Report.Limit)
	assert.False(t, captured.cfg.Report.FirstParent)
	assert.False(t, captured.cfg.Report.Silent)
}

func TestReportCommand_FlagsOverrideConfig(t *testing.T) {
	captured := &capturingExecutor{}

	require.NoError(t, executeReport(t, captured.run,
		"--format", "json",
		"--limit", "25",
		"--first-parent",
		"--since", "24h",
		"--silent",
	))

	assert.Equal(t, worklog.FormatJSON, captured.cfg.Report.Format)
	assert.Equal(t, 25, captured.cfg.Report.Limit)
	assert.True(t, captured.cfg.Report.FirstParent)
	assert.Equal(t, "24h", captured.cfg.Report.Since)
	assert.True(t, captured.cfg.Report.Silent)
}

func TestReportCommand_PositionalPathWins(t *testing.T) {
	captured := &capturingExecutor{}

	require.NoError(t, executeReport(t, captured.run, "/tmp/repo", "--path", "/ignored"))

	assert.Equal(t, "/tmp/repo", captured.path)
}

func TestReportCommand_PathFlag(t *testing.T) {
	captured := &capturingExecutor{}

	require.NoError(t, executeReport(t, captured.run, "--path", "/tmp/elsewhere"))

	assert.Equal(t, "/tmp/elsewhere", captured.path)
}

func TestReportCommand_InvalidFormat(t *testing.T) {
	captured := &capturingExecutor{}

	err := executeReport(t, captured.run, "--format", "xml")

	require.ErrorIs(t, err, worklog.ErrUnsupportedFormat)
	assert.Nil(t, captured.cfg)
}

func TestReportCommand_FormatNormalized(t *testing.T) {
	captured := &capturingExecutor{}

	require.NoError(t, executeReport(t, captured.run, "--format", " YAML "))

	assert.Equal(t, worklog.FormatYAML, captured.cfg.Report.Format)
}
