// Package editor opens notes in the user's editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AlexanderBrevig/mdb/internal/logging"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/shellquote"
)

// Launcher runs the configured editor in the foreground with the terminal
// attached, and waits for it to exit.
type Launcher struct {
	editor string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    logrus.FieldLogger
}

// New creates a Launcher for editor, usually the config editor or $EDITOR.
func New(editor string, log logrus.FieldLogger) *Launcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Launcher{
		editor: strings.TrimSpace(editor),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    log,
	}
}

// Command builds the editor command for path.
//
// An editor containing spaces (e.g. "code --wait" or "open -a Typora") runs
// through sh -c with the path shell-quoted.
func (l *Launcher) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	if l.editor == "" {
		return nil, mdberr.ExternalProcess(nil, "$EDITOR must be set to open %s", path)
	}

	var cmd *exec.Cmd
	switch {
	case !strings.ContainsAny(l.editor, " \t"):
		cmd = exec.CommandContext(ctx, l.editor, path)
	case runtime.GOOS == "windows":
		fields := strings.Fields(l.editor)
		cmd = exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	default:
		cmd = exec.CommandContext(ctx, "sh", "-c", shellquote.Append(l.editor, path))
	}
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd, nil
}

// Open runs the editor on path and waits for it to exit.
func (l *Launcher) Open(ctx context.Context, path string) error {
	cmd, err := l.Command(ctx, path)
	if err != nil {
		return err
	}

	l.log.WithFields(logrus.Fields{"editor": CommandName(l.editor), "path": path}).Info("opening editor")
	if err := cmd.Run(); err != nil {
		return mdberr.ExternalProcess(err, "$EDITOR must be set and able to open %s", path)
	}
	return nil
}

// CommandName returns the executable name of an editor command line,
// without arguments, quotes or directories.
func CommandName(editor string) string {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return ""
	}

	var first string
	if editor[0] == '"' || editor[0] == '\'' {
		quote := editor[0]
		if end := strings.IndexByte(editor[1:], quote); end >= 0 {
			first = editor[1 : end+1]
		} else {
			first = editor[1:]
		}
	} else {
		first = strings.Fields(editor)[0]
	}
	return filepath.Base(first)
}
