// Package headless is a storage backend that answers pickers from a
// script instead of a user. It backs tests and unattended runs.
//
//	local := storage.NewLocal(storage.WithFS(memfs))
//	p := headless.New(local, headless.Pick("/docs/a.txt"), headless.Cancel)
//
// Each picker call consumes the next Answer; once the script is exhausted
// every picker is cancelled.
package headless

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/storage"
)

// Name is the backend name.
const Name = "headless"

// Answer is a scripted picker response. An Answer with no paths and no
// error cancels the picker.
type Answer struct {
	Paths []string
	Err   error
}

// Cancel is the Answer of a user dismissing the picker.
var Cancel = Answer{}

// Pick returns an Answer choosing paths.
func Pick(paths ...string) Answer { return Answer{Paths: paths} }

// Fail returns an Answer that makes the picker fail with err.
func Fail(err error) Answer { return Answer{Err: err} }

// Request records one picker call. Exactly one of the option fields is
// set, according to Op.
type Request struct {
	Op     string // "open", "save" or "folder"
	Open   *storage.OpenOptions
	Save   *storage.SaveOptions
	Folder *storage.FolderOptions
}

// Provider is the scripted backend.
type Provider struct {
	local *storage.Local

	mu       sync.Mutex
	answers  []Answer
	requests []Request
}

// New returns a Provider resolving answers through local. A nil local
// means the OS filesystem.
func New(local *storage.Local, answers ...Answer) *Provider {
	if local == nil {
		local = storage.NewLocal()
	}
	return &Provider{local: local, answers: answers}
}

// Factory returns a storage.Factory that always yields a new Provider.
func Factory(local *storage.Local, answers ...Answer) storage.Factory {
	return func(context.Context) (storage.Provider, error) {
		return New(local, answers...), nil
	}
}

// Push appends answers to the script.
func (p *Provider) Push(answers ...Answer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answers = append(p.answers, answers...)
}

// Requests returns the picker calls made so far.
func (p *Provider) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

func (p *Provider) next(r Request) Answer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, r)
	if len(p.answers) == 0 {
		return Cancel
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func (p *Provider) Name() string        { return Name }
func (p *Provider) CanOpen() bool       { return true }
func (p *Provider) CanSave() bool       { return true }
func (p *Provider) CanPickFolder() bool { return true }

func fail(op string, err error) error {
	return &storage.BackendError{Backend: Name, Op: op, Err: err}
}

// OpenFilePicker returns the scripted files that pass opts.Filters. Only
// the first is kept unless opts.AllowMultiple is set.
func (p *Provider) OpenFilePicker(ctx context.Context, opts storage.OpenOptions) ([]*storage.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := p.next(Request{Op: "open", Open: &opts})
	if a.Err != nil {
		return nil, fail("open", a.Err)
	}

	var files []*storage.File
	for _, name := range a.Paths {
		if !storage.MatchAny(opts.Filters, name) {
			ui.Logger().Debug("storage: headless answer filtered out", "path", name)
			continue
		}
		f, err := p.local.FileFromPath(name)
		if err != nil {
			return nil, fail("open", err)
		}
		files = append(files, f)
		if !opts.AllowMultiple {
			break
		}
	}
	return files, nil
}

// SaveFilePicker returns a handle to the first scripted path, which need
// not exist. opts.DefaultExtension is appended to a name without one.
func (p *Provider) SaveFilePicker(ctx context.Context, opts storage.SaveOptions) (*storage.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := p.next(Request{Op: "save", Save: &opts})
	if a.Err != nil {
		return nil, fail("save", a.Err)
	}
	if len(a.Paths) == 0 {
		return nil, nil
	}

	name := a.Paths[0]
	if path.Ext(name) == "" && opts.DefaultExtension != "" {
		name = fmt.Sprintf("%s.%s", name, trimDot(opts.DefaultExtension))
	}
	f, err := p.local.NewFile(name)
	if err != nil {
		return nil, fail("save", err)
	}
	return f, nil
}

// OpenFolderPicker returns the scripted folders.
func (p *Provider) OpenFolderPicker(ctx context.Context, opts storage.FolderOptions) ([]*storage.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := p.next(Request{Op: "folder", Folder: &opts})
	if a.Err != nil {
		return nil, fail("folder", a.Err)
	}

	var folders []*storage.Folder
	for _, name := range a.Paths {
		d, err := p.local.FolderFromPath(name)
		if err != nil {
			return nil, fail("folder", err)
		}
		folders = append(folders, d)
		if !opts.AllowMultiple {
			break
		}
	}
	return folders, nil
}

func (p *Provider) FileFromBookmark(_ context.Context, token string) (*storage.File, error) {
	return p.local.FileFromBookmark(token)
}

func (p *Provider) FolderFromBookmark(_ context.Context, token string) (*storage.Folder, error) {
	return p.local.FolderFromBookmark(token)
}

func trimDot(ext string) string {
	for len(ext) > 0 && ext[0] == '.' {
		ext = ext[1:]
	}
	return ext
}

var _ storage.Provider = (*Provider)(nil)
