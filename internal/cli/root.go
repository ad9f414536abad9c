package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/lifelens/lifelens-cli/internal/api"
	"github.com/lifelens/lifelens-cli/internal/config"
	"github.com/lifelens/lifelens-cli/internal/session"
	"github.com/lifelens/lifelens-cli/internal/storage"
	"github.com/lifelens/lifelens-cli/internal/validation"
)

// Context carries the wired dependencies into every command's Run.
type Context struct {
	Store     storage.Provider
	API       *api.Client
	Session   *session.Store
	Config    config.Config
	Validator *validation.Validator
}

// TermWidth returns the terminal width, or a sane default when stdout is
// not a terminal.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// newTabWriter returns the tabwriter used for aligned list output.
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// confirm asks a yes/no question on stdin and defaults to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
