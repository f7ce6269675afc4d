package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{
		"register", "login", "logout", "whoami",
		"board", "task", "comment", "account", "dashboard", "user", "tutorial",
	} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestNewRootCmd_Aliases(t *testing.T) {
	root := NewRootCmd()

	sub, _, err := root.Find([]string{"comments"})
	require.NoError(t, err)
	assert.Equal(t, "comment", sub.Name())

	sub, _, err = root.Find([]string{"users"})
	require.NoError(t, err)
	assert.Equal(t, "user", sub.Name())
}

func TestNewRootCmd_RejectsArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"bogus"})

	err := root.Execute()
	require.Error(t, err)
}
