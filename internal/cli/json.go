package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// errReported marks an error whose message was already written as JSON.
var errReported = errors.New("error already reported")

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func outputJSON(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(cmd *cobra.Command, data interface{}) {
	outputJSON(cmd.OutOrStdout(), Response{OK: true, Data: data})
}

func outputError(cmd *cobra.Command, code, message, suggestion string) {
	outputJSON(cmd.OutOrStdout(), Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
	})
}

// handleError reports err according to the output mode. In JSON mode the
// envelope is written and errReported returned so the exit status stays
// non-zero without printing twice.
func (a *app) handleError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errReported) {
		return err
	}
	a.log.WithError(err).Debug("command failed")
	if a.jsonOutput {
		outputError(cmd, codeFor(err), err.Error(), suggestionFor(err))
		return errReported
	}
	return err
}
