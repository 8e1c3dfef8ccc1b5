package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/storyplanner/internal/importers"
)

func newTestCommand(env map[string]string) (*NotionImportCommand, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := NewNotionImportCommand()
	cmd.out = &out
	cmd.getenv = func(k string) string { return env[k] }
	return cmd, &out
}

func TestNotionImportCommand_ParseFlags(t *testing.T) {
	cmd, _ := newTestCommand(nil)

	err := cmd.ParseFlags([]string{
		"-ref", "abc", "-ref", "def, ghi", "-token", "secret_x",
		"-name", "Saga", "-user", "u1", "-db", "/tmp/x.db", "-json", "-force",
	})
	require.NoError(t, err)

	assert.Equal(t, referenceList{"abc", "def", "ghi"}, cmd.References)
	assert.Equal(t, "secret_x", cmd.Token)
	assert.Equal(t, "Saga", cmd.ProjectName)
	assert.Equal(t, "u1", cmd.UserID)
	assert.Equal(t, "/tmp/x.db", cmd.DatabasePath)
	assert.True(t, cmd.JSON)
	assert.True(t, cmd.Force)
}

func TestNotionImportCommand_Defaults(t *testing.T) {
	cmd, _ := newTestCommand(map[string]string{TokenEnvVar: " secret_env "})

	require.NoError(t, cmd.ParseFlags([]string{"-ref", "abc"}))
	assert.Equal(t, "secret_env", cmd.Token)
	assert.Equal(t, importers.DefaultProjectName, cmd.ProjectName)
	assert.Equal(t, DefaultCLIUser, cmd.UserID)
	assert.False(t, cmd.JSON)
}

func TestNotionImportCommand_ParseFlagsErrors(t *testing.T) {
	cmd, _ := newTestCommand(nil)
	assert.ErrorContains(t, cmd.ParseFlags([]string{"-token", "t"}), "-ref")

	cmd, _ = newTestCommand(nil)
	assert.ErrorContains(t, cmd.ParseFlags([]string{"-ref", "abc"}), TokenEnvVar)
}

func sampleReport() importers.Report {
	report := importers.NewReport()
	report.ProjectID = "p1"
	report.Imported.Characters = 3
	report.PlanningPageDistribution.CharactersPage = append(report.PlanningPageDistribution.CharactersPage, "3 characters imported")
	report.AddError("Plot Threads", assert.AnError)
	report.Finalize()
	return report
}

func TestNotionImportCommand_PrintText(t *testing.T) {
	cmd, out := newTestCommand(nil)
	require.NoError(t, cmd.print(sampleReport()))

	text := out.String()
	assert.Contains(t, text, "Project: p1")
	assert.Contains(t, text, "Characters:     3")
	assert.Contains(t, text, "Characters page:\n  - 3 characters imported")
	assert.Contains(t, text, "1 errors occurred")
	assert.NotContains(t, text, "Outline page")
}

func TestNotionImportCommand_PrintJSON(t *testing.T) {
	cmd, out := newTestCommand(nil)
	cmd.JSON = true
	require.NoError(t, cmd.print(sampleReport()))

	var decoded importers.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "p1", decoded.ProjectID)
	assert.True(t, decoded.Success)
	assert.Len(t, decoded.Errors, 1)
}
