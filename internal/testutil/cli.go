package testutil

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// ExecuteCommand runs a cobra command with args and returns what it wrote to stdout
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

// ParseJSON parses JSON output from CLI commands into v
func ParseJSON(t *testing.T, output string, v any) {
	t.Helper()

	if err := sonic.ConfigStd.UnmarshalFromString(output, v); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
