// Package dialog is a storage backend that runs an external dialog helper,
// zenity or kdialog, and reads the chosen paths from its output.
//
// Importing the package registers the backend with priority 50. The
// UI_DIALOG environment variable overrides helper discovery with a full
// command line, e.g. UI_DIALOG="zenity --modal --width=900".
package dialog

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/storage"
)

// Name is the backend name.
const Name = "dialog"

// EnvCommand names the environment variable holding a helper command line.
const EnvCommand = "UI_DIALOG"

func init() {
	storage.Register(Name, 50, Factory())
}

// Tool identifies the helper's command-line dialect.
type Tool int

const (
	Zenity Tool = iota
	KDialog
)

func (t Tool) String() string {
	if t == KDialog {
		return "kdialog"
	}
	return "zenity"
}

// Runner executes argv and returns its standard output. A helper that the
// user dismissed exits with status 1; Runner reports that as an error
// implementing ExitCode() int, as *exec.ExitError does.
type Runner func(ctx context.Context, argv []string) ([]byte, error)

func execRunner(ctx context.Context, argv []string) ([]byte, error) {
	return exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
}

// Option configures the backend.
type Option func(*options)

type options struct {
	command string
	runner  Runner
	local   *storage.Local
}

// WithCommand sets the helper command line, parsed with shell quoting.
// It takes precedence over UI_DIALOG and discovery.
func WithCommand(cmd string) Option {
	return func(o *options) { o.command = cmd }
}

// WithRunner replaces process execution.
func WithRunner(r Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithLocal resolves picked paths through l instead of the OS filesystem.
func WithLocal(l *storage.Local) Option {
	return func(o *options) { o.local = l }
}

// Provider drives one helper.
type Provider struct {
	tool  Tool
	argv  []string
	run   Runner
	local *storage.Local
}

// Factory returns a storage.Factory for the helper. It reports the backend
// unavailable when no command is configured and neither zenity nor kdialog
// is on PATH.
func Factory(opts ...Option) storage.Factory {
	return func(context.Context) (storage.Provider, error) {
		p, err := New(opts...)
		if p == nil || err != nil {
			return nil, err
		}
		return p, nil
	}
}

// New resolves the helper command and returns a Provider, or nil when no
// helper is available.
func New(opts ...Option) (*Provider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.runner == nil {
		o.runner = execRunner
	}
	if o.local == nil {
		o.local = storage.NewLocal()
	}

	cmd := o.command
	if cmd == "" {
		cmd = os.Getenv(EnvCommand)
	}
	var argv []string
	if cmd != "" {
		parsed, err := shellwords.Parse(cmd)
		if err != nil {
			return nil, err
		}
		argv = parsed
	} else {
		for _, name := range []string{"zenity", "kdialog"} {
			if p, err := exec.LookPath(name); err == nil {
				argv = []string{p}
				break
			}
		}
	}
	if len(argv) == 0 {
		ui.Logger().Debug("storage: no dialog helper found")
		return nil, nil
	}

	tool := Zenity
	if strings.Contains(filepath.Base(argv[0]), "kdialog") {
		tool = KDialog
	}
	ui.Logger().Debug("storage: dialog helper", "tool", tool, "argv", argv)
	return &Provider{tool: tool, argv: argv, run: o.runner, local: o.local}, nil
}

// Tool returns the helper's dialect.
func (p *Provider) Tool() Tool { return p.tool }

func (p *Provider) Name() string        { return Name }
func (p *Provider) CanOpen() bool       { return true }
func (p *Provider) CanSave() bool       { return true }
func (p *Provider) CanPickFolder() bool { return true }

// invoke runs the helper and splits its output into paths. A dismissed
// helper yields no paths and no error.
func (p *Provider) invoke(ctx context.Context, op string, args []string) ([]string, error) {
	argv := append(append([]string(nil), p.argv...), args...)
	out, err := p.run(ctx, argv)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exit interface{ ExitCode() int }
		if errors.As(err, &exit) && exit.ExitCode() == 1 {
			return nil, nil
		}
		return nil, &storage.BackendError{Backend: Name, Op: op, Err: err}
	}
	return splitOutput(out), nil
}

func splitOutput(out []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

func (p *Provider) startDir(start *storage.Folder, loc storage.WellKnownFolder) string {
	if start != nil {
		return start.Path()
	}
	if loc == storage.FolderUnspecified {
		return ""
	}
	dir, err := p.local.WellKnownFolderPath(loc)
	if err != nil {
		return ""
	}
	return dir
}

// OpenFilePicker runs the helper's open-file dialog.
func (p *Provider) OpenFilePicker(ctx context.Context, opts storage.OpenOptions) ([]*storage.File, error) {
	args := openArgs(p.tool, opts, p.startDir(opts.StartFolder, opts.StartLocation))
	paths, err := p.invoke(ctx, "open", args)
	if err != nil {
		return nil, err
	}
	files := make([]*storage.File, 0, len(paths))
	for _, name := range paths {
		f, err := p.local.FileFromPath(name)
		if err != nil {
			return nil, &storage.BackendError{Backend: Name, Op: "open", Err: err}
		}
		files = append(files, f)
	}
	return files, nil
}

// SaveFilePicker runs the helper's save dialog.
func (p *Provider) SaveFilePicker(ctx context.Context, opts storage.SaveOptions) (*storage.File, error) {
	args := saveArgs(p.tool, opts, p.startDir(opts.StartFolder, opts.StartLocation))
	paths, err := p.invoke(ctx, "save", args)
	if err != nil || len(paths) == 0 {
		return nil, err
	}
	f, err := p.local.NewFile(paths[0])
	if err != nil {
		return nil, &storage.BackendError{Backend: Name, Op: "save", Err: err}
	}
	return f, nil
}

// OpenFolderPicker runs the helper's directory dialog.
func (p *Provider) OpenFolderPicker(ctx context.Context, opts storage.FolderOptions) ([]*storage.Folder, error) {
	args := folderArgs(p.tool, opts, p.startDir(opts.StartFolder, opts.StartLocation))
	paths, err := p.invoke(ctx, "folder", args)
	if err != nil {
		return nil, err
	}
	folders := make([]*storage.Folder, 0, len(paths))
	for _, name := range paths {
		d, err := p.local.FolderFromPath(name)
		if err != nil {
			return nil, &storage.BackendError{Backend: Name, Op: "folder", Err: err}
		}
		folders = append(folders, d)
	}
	return folders, nil
}

func (p *Provider) FileFromBookmark(_ context.Context, token string) (*storage.File, error) {
	return p.local.FileFromBookmark(token)
}

func (p *Provider) FolderFromBookmark(_ context.Context, token string) (*storage.Folder, error) {
	return p.local.FolderFromBookmark(token)
}

var _ storage.Provider = (*Provider)(nil)
