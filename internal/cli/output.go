package cli

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

// Writer returns the destination of regular output
func (f *OutputFormatter) Writer() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.Writer(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.WriteJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// WriteJSON encodes v as one line of JSON
func (f *OutputFormatter) WriteJSON(v any) error {
	return json.NewEncoder(f.Writer()).Encode(v)
}

// Println writes a human-readable line unless quiet
func (f *OutputFormatter) Println(a ...any) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintln(f.Writer(), a...)
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
		return f.WriteJSON(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	_, _ = fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports an error and returns it tagged with exitCode
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: exitCode, Err: err, Reported: true}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(f.Writer(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.Writer(), "%+v\n", data)
	return err
}
