// Package editor opens files in the user's editor.
package editor

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"

	"hoarder/internal/ports"
)

// fallbacks are tried in order when neither $VISUAL nor $EDITOR is set
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath, getenv: os.Getenv}
}

// OpenFile opens path and waits for the editor to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the editor process for path, attached to the terminal
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, errors.New("no editor found: set $EDITOR")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) findEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := o.getenv(env); editor != "" {
			return editor
		}
	}
	for _, name := range fallbacks {
		if path, err := o.lookPath(name); err == nil {
			return path
		}
	}
	return ""
}
