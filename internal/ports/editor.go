package ports

import "os/exec"

// EditorOpener opens files in an external editor
type EditorOpener interface {
	// OpenFile opens path and waits for the editor to exit
	OpenFile(path string) error

	// Command returns the editor process without starting it
	Command(path string) (*exec.Cmd, error)
}
