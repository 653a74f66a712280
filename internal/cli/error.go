package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hlop3z/crudgen/internal/alerr"
)

// FormatError formats an error for CLI display in Cargo/rustc style.
// Coded errors anywhere in the chain are rendered with their code, context
// and help lines; anything else is a one-line generic error.
//
//	error[E1001]: model does not exist
//	  --> models/Prodcut.yaml
//	   |
//	   | model: Prodcut
//	help: did you mean 'Product'?
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var coded *alerr.Error
	if errors.As(err, &coded) {
		return formatCodedError(coded)
	}
	return formatGenericError(err)
}

// hiddenKeys are context keys rendered elsewhere or not at all.
var hiddenKeys = map[string]bool{
	"path":       true,
	"helps":      true,
	"suggestion": true,
}

func formatCodedError(err *alerr.Error) string {
	var b strings.Builder
	ctx := err.GetContext()

	b.WriteString(Error("error"))
	b.WriteString("[")
	b.WriteString(Code(string(err.GetCode())))
	b.WriteString("]: ")
	b.WriteString(err.GetMessage())
	b.WriteString("\n")

	if path, ok := ctx["path"].(string); ok && path != "" {
		b.WriteString("  ")
		b.WriteString(Arrow())
		b.WriteString(" ")
		b.WriteString(FilePath(path))
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		if !hiddenKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "   %s %s: %v\n", Pipe(), k, ctx[k])
		}
	}

	for _, help := range err.Helps() {
		b.WriteString(Help("help"))
		b.WriteString(": ")
		b.WriteString(help)
		b.WriteString("\n")
	}

	if cause := err.GetCause(); cause != nil {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		b.WriteString(Note("cause"))
		b.WriteString(": ")
		b.WriteString(cause.Error())
		b.WriteString("\n")
	}

	return b.String()
}

func formatGenericError(err error) string {
	return Error("error") + ": " + err.Error() + "\n"
}

// FormatWarning formats a warning line.
func FormatWarning(msg string) string {
	return Warning("warning") + ": " + msg + "\n"
}

// FormatNote formats a note line.
func FormatNote(msg string) string {
	return Note("note") + ": " + msg + "\n"
}

// FormatHelp formats a help line.
func FormatHelp(msg string) string {
	return Help("help") + ": " + msg + "\n"
}

// FormatSuccess formats a success line.
func FormatSuccess(msg string) string {
	return Success("success") + ": " + msg + "\n"
}
