package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/notify"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable.
// It is also the notifier for the dialogs a command drives, so controller
// messages reach the terminal in human mode and stay out of JSON output.
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer

	mu       sync.Mutex
	reported bool
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Human reports whether decorated, human-readable output is wanted
func (f *OutputFormatter) Human() bool {
	return !f.JSON && !f.Quiet
}

// Notify implements notify.Notifier
func (f *OutputFormatter) Notify(level notify.Level, message string) {
	if level == notify.LevelError {
		f.mu.Lock()
		f.reported = true
		f.mu.Unlock()
	}
	if !f.Human() {
		return
	}

	w := f.Out
	if level != notify.LevelInfo {
		w = f.Err
	}
	fmt.Fprintln(w, notify.RenderInline(notify.Notification{Level: level, Message: message}))
}

// Success outputs a successful result. human renders the result in
// human-readable mode and may be nil.
func (f *OutputFormatter) Success(data any, human func(w io.Writer)) error {
	switch {
	case f.JSON:
		return sonic.ConfigStd.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	case f.Quiet:
		for _, id := range idsOf(data) {
			fmt.Fprintln(f.Out, id)
		}
		return nil
	}
	if human != nil {
		human(f.Out)
	}
	return nil
}

// Fail reports err (unless a notification already did) and returns the
// ExitErr the command should return
func (f *OutputFormatter) Fail(err error) error {
	p := Classify(err)

	f.mu.Lock()
	reported := f.reported
	f.mu.Unlock()

	switch {
	case f.JSON:
		if encErr := f.ErrorWithSuggestion(p.Code, p.Message, p.Suggestion); encErr != nil {
			return &ExitErr{Code: ExitError, Err: encErr}
		}
	case !reported:
		_ = f.ErrorWithSuggestion(p.Code, p.Message, p.Suggestion)
	case p.Suggestion != "" && !f.Quiet:
		fmt.Fprintf(f.Err, "Suggestion: %s\n", p.Suggestion)
	}
	return &ExitErr{Code: p.Exit, Err: err}
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return sonic.ConfigStd.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.Err, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.Err, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// idsOf extracts the ids printed in quiet mode
func idsOf(data any) []string {
	switch v := data.(type) {
	case models.Entity:
		return []string{v.EntityID()}
	case []models.Board:
		ids := make([]string, len(v))
		for i := range v {
			ids[i] = v[i].ID
		}
		return ids
	case []models.Task:
		ids := make([]string, len(v))
		for i := range v {
			ids[i] = v[i].ID
		}
		return ids
	case []models.Comment:
		ids := make([]string, len(v))
		for i := range v {
			ids[i] = v[i].ID
		}
		return ids
	case []models.User:
		ids := make([]string, len(v))
		for i := range v {
			ids[i] = v[i].ID
		}
		return ids
	case []models.Activity:
		ids := make([]string, len(v))
		for i := range v {
			ids[i] = v[i].ID
		}
		return ids
	case *models.User:
		return []string{v.ID}
	}
	return nil
}
