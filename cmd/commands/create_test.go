package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidgrid/bidgrid-cli/internal/cli"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
)

func setupProject(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldDir) })
	os.Chdir(tempDir)

	require.NoError(t, files.InitProjectStructure())
	cli.SetGlobalFlags(true, true)
	t.Cleanup(func() { cli.SetGlobalFlags(false, false) })
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCreateCommand(t *testing.T) {
	setupProject(t)
	createRows, createSample = 1, false

	err := runCommand(t, NewCreateCommand(), "Kitchen Remodel")
	require.NoError(t, err)

	est, err := files.ReadEstimate("kitchen-remodel.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Remodel", est.Name)
	assert.Len(t, est.Rows, 1)
	assert.True(t, est.Rows[0].IsMainRow)
}

func TestCreateCommandRows(t *testing.T) {
	setupProject(t)
	createRows, createSample = 1, false

	err := runCommand(t, NewCreateCommand(), "Garage", "--rows", "4")
	require.NoError(t, err)

	est, err := files.ReadEstimate("garage.yaml")
	require.NoError(t, err)
	assert.Len(t, est.Rows, 4)
}

func TestCreateCommandSample(t *testing.T) {
	setupProject(t)
	createRows, createSample = 1, false

	err := runCommand(t, NewCreateCommand(), "Demo", "--sample")
	require.NoError(t, err)

	est, err := files.ReadEstimate("demo.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, est.Rows)
	assert.NotEmpty(t, est.Assemblies)
}

func TestCreateCommandDuplicate(t *testing.T) {
	setupProject(t)
	createRows, createSample = 1, false

	require.NoError(t, runCommand(t, NewCreateCommand(), "Kitchen"))

	err := runCommand(t, NewCreateCommand(), "Kitchen")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateCommandInvalidName(t *testing.T) {
	setupProject(t)

	err := runCommand(t, NewCreateCommand(), "../escape")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
}

func TestCreateCommandNoProject(t *testing.T) {
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldDir) })
	os.Chdir(tempDir)

	err := runCommand(t, NewCreateCommand(), "Kitchen")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no .bidgrid directory")
}
