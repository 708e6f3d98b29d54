package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ui/storage"
)

type exitError int

func (e exitError) Error() string { return "exit status" }
func (e exitError) ExitCode() int { return int(e) }

func newLocal(t *testing.T) *storage.Local {
	t.Helper()
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fsys, "home/u/Documents", 0o755))
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "home/u/Documents/a.txt", []byte("a"), 0o644))
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "home/u/Documents/b.png", []byte("b"), 0o644))
	return storage.NewLocal(storage.WithFS(fsys), storage.WithHome("/home/u"))
}

// fake records argv and replays a canned result.
type fake struct {
	argv [][]string
	out  string
	err  error
}

func (f *fake) run(_ context.Context, argv []string) ([]byte, error) {
	f.argv = append(f.argv, argv)
	return []byte(f.out), f.err
}

func newProvider(t *testing.T, cmd string, f *fake) *Provider {
	t.Helper()
	p, err := New(WithCommand(cmd), WithRunner(f.run), WithLocal(newLocal(t)))
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNew_Command(t *testing.T) {
	p := newProvider(t, `/usr/bin/kdialog --caption "My App"`, &fake{})
	assert.Equal(t, KDialog, p.Tool())
	assert.Equal(t, []string{"/usr/bin/kdialog", "--caption", "My App"}, p.argv)

	_, err := New(WithCommand(`zenity "unterminated`))
	assert.Error(t, err)
}

func TestOpenFilePicker_Zenity(t *testing.T) {
	f := &fake{out: "/home/u/Documents/a.txt\n/home/u/Documents/b.png\n"}
	p := newProvider(t, "zenity --modal", f)

	files, err := p.OpenFilePicker(context.Background(), storage.OpenOptions{
		Title:         "Pick",
		AllowMultiple: true,
		StartLocation: storage.FolderDocuments,
		Filters:       []storage.FileTypeFilter{{Name: "Images", Patterns: []string{"*.png"}}},
	})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Name())
	assert.Equal(t, "/home/u/Documents/b.png", files[1].Path())

	require.Len(t, f.argv, 1)
	assert.Equal(t, []string{
		"zenity", "--modal",
		"--file-selection", "--title=Pick",
		"--multiple", "--separator=\n",
		"--filename=/home/u/Documents/",
		"--file-filter=Images | *.png",
	}, f.argv[0])
}

func TestOpenFilePicker_KDialog(t *testing.T) {
	f := &fake{out: "/home/u/Documents/a.txt\n"}
	p := newProvider(t, "kdialog", f)

	files, err := p.OpenFilePicker(context.Background(), storage.OpenOptions{
		Filters: []storage.FileTypeFilter{
			{Name: "Text", Patterns: []string{"*.txt"}},
			{Name: "Images", Patterns: []string{"*.png", "*.jpg"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, []string{
		"kdialog", "--title", "Open File", "--getopenfilename", ".",
		"Text (*.txt)|Images (*.png *.jpg)",
	}, f.argv[0])
}

func TestCancel(t *testing.T) {
	f := &fake{err: exitError(1)}
	p := newProvider(t, "zenity", f)
	ctx := context.Background()

	files, err := p.OpenFilePicker(ctx, storage.OpenOptions{})
	assert.NoError(t, err)
	assert.Empty(t, files)

	file, err := p.SaveFilePicker(ctx, storage.SaveOptions{})
	assert.NoError(t, err)
	assert.Nil(t, file)

	folders, err := p.OpenFolderPicker(ctx, storage.FolderOptions{})
	assert.NoError(t, err)
	assert.Empty(t, folders)
}

func TestFailure(t *testing.T) {
	f := &fake{err: exitError(5)}
	p := newProvider(t, "zenity", f)

	_, err := p.OpenFilePicker(context.Background(), storage.OpenOptions{})
	var be *storage.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, Name, be.Backend)
	assert.Equal(t, "open", be.Op)

	f.err = nil
	f.out = "/home/u/Documents/missing.txt\n"
	_, err = p.OpenFilePicker(context.Background(), storage.OpenOptions{})
	assert.ErrorIs(t, err, hackpadfs.ErrNotExist)
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fake{err: errors.New("signal: killed")}
	p := newProvider(t, "zenity", f)

	_, err := p.OpenFilePicker(ctx, storage.OpenOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveFilePicker(t *testing.T) {
	f := &fake{out: "/home/u/Documents/new.md\n"}
	p := newProvider(t, "zenity", f)

	file, err := p.SaveFilePicker(context.Background(), storage.SaveOptions{
		SuggestedName:       "notes",
		DefaultExtension:    "md",
		StartLocation:       storage.FolderDocuments,
		ShowOverwritePrompt: true,
	})
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "new.md", file.Name())
	require.NoError(t, file.Write([]byte("# hi")))

	assert.Equal(t, []string{
		"zenity", "--file-selection", "--save", "--title=Save File",
		"--confirm-overwrite", "--filename=/home/u/Documents/notes.md",
	}, f.argv[0])
}

func TestOpenFolderPicker(t *testing.T) {
	f := &fake{out: "/home/u/Documents\n"}
	p := newProvider(t, "kdialog", f)

	folders, err := p.OpenFolderPicker(context.Background(), storage.FolderOptions{StartLocation: storage.FolderHome})
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Documents", folders[0].Name())
	assert.Equal(t, []string{"kdialog", "--title", "Select Folder", "--getexistingdirectory", "/home/u"}, f.argv[0])
}

func TestBookmarks(t *testing.T) {
	f := &fake{out: "/home/u/Documents/a.txt\n"}
	p := newProvider(t, "zenity", f)
	ctx := context.Background()

	files, err := p.OpenFilePicker(ctx, storage.OpenOptions{})
	require.NoError(t, err)
	require.Len(t, files, 1)

	got, err := p.FileFromBookmark(ctx, files[0].Bookmark())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, files[0].Path(), got.Path())

	got, err = p.FileFromBookmark(ctx, "garbage")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSplitOutput(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b c"}, splitOutput([]byte("/a\r\n/b c\n\n")))
	assert.Nil(t, splitOutput(nil))
}
