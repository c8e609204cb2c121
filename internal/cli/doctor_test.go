package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_NotARepository(t *testing.T) {
	isolateConfig(t)

	stdout, stderr, _, err := runCLI(t, historySource(), "doctor", "--backend", "go-git")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, stdout, "✓ Git CLI:")
	assert.Contains(t, stdout, "✗ Repository:")
	assert.Contains(t, stdout, "✗ Tags:")
	assert.Contains(t, stderr, "one or more checks failed")
}

func TestDoctor_Flags(t *testing.T) {
	t.Parallel()

	cmd, _, err := rootCmd.Find([]string{"doctor"})
	require.NoError(t, err)

	repo := cmd.Flags().Lookup("repo")
	require.NotNil(t, repo)
	assert.Equal(t, "C", repo.Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("backend"))
}
