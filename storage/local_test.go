package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// png is the smallest header filetype recognizes as image/png.
var png = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newMemLocal(t *testing.T) (*Local, hackpadfs.FS) {
	t.Helper()
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	for _, d := range []string{"home/u/.config", "home/u/Documents", "home/u/Bilder", "home/u/Desktop"} {
		require.NoError(t, hackpadfs.MkdirAll(fsys, d, 0o755))
	}
	write := func(p string, data []byte) {
		require.NoError(t, hackpadfs.WriteFullFile(fsys, p, data, 0o644))
	}
	write("home/u/Documents/notes.txt", []byte("plain text"))
	write("home/u/Documents/pic.bin", png)
	write("home/u/Documents/data.json", []byte(`{"a":1}`))
	write("home/u/.config/user-dirs.dirs", []byte(strings.Join([]string{
		"# written by xdg-user-dirs-update",
		`XDG_PICTURES_DIR="$HOME/Bilder"`,
		`XDG_MUSIC_DIR="$HOME/"`,
		`XDG_DESKTOP_DIR="$HOME/Desktop"`,
	}, "\n")))
	return NewLocal(WithFS(fsys), WithHome("/home/u")), fsys
}

func TestLocal_Paths(t *testing.T) {
	l, _ := newMemLocal(t)

	f, err := l.FileFromPath("/home/u/Documents/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Name())
	assert.Equal(t, "/home/u/Documents/notes.txt", f.Path())
	assert.Equal(t, "/home/u/Documents", f.Parent().Path())

	f, err = l.FileFromPath("~/Documents/../Documents/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/Documents/notes.txt", f.Path())

	_, err = l.FileFromPath("/home/u/Documents")
	assert.ErrorIs(t, err, ErrNotFile)
	_, err = l.FolderFromPath("/home/u/Documents/notes.txt")
	assert.ErrorIs(t, err, ErrNotFolder)
	_, err = l.FileFromPath("/nope")
	assert.ErrorIs(t, err, hackpadfs.ErrNotExist)

	root, err := l.FolderFromPath("/")
	require.NoError(t, err)
	assert.Equal(t, "/", root.Name())
	assert.Equal(t, "/", root.Path())
}

func TestFile_ReadWrite(t *testing.T) {
	l, _ := newMemLocal(t)
	docs, err := l.FolderFromPath("/home/u/Documents")
	require.NoError(t, err)

	f, err := docs.CreateFile("new.txt", []byte("one"))
	require.NoError(t, err)
	require.NoError(t, f.Write([]byte("two")))

	data, err := f.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	r, err := f.Open()
	require.NoError(t, err)
	defer r.Close()
	data, err = io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	info, err := f.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 3, info.Size())

	same, err := docs.File("new.txt")
	require.NoError(t, err)
	assert.Equal(t, f.Path(), same.Path())
}

func TestFolder_Children(t *testing.T) {
	l, _ := newMemLocal(t)
	docs, err := l.FolderFromPath("/home/u/Documents")
	require.NoError(t, err)

	sub, err := docs.CreateFolder("archive/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026", sub.Name())

	items, err := docs.Children()
	require.NoError(t, err)
	var names []string
	for _, it := range items {
		names = append(names, it.Name())
	}
	assert.Equal(t, []string{"archive", "data.json", "notes.txt", "pic.bin"}, names)
	assert.IsType(t, &Folder{}, items[0])
	assert.IsType(t, &File{}, items[1])
}

func TestFile_ContentType(t *testing.T) {
	l, _ := newMemLocal(t)
	tests := []struct {
		path string
		want string
	}{
		{"/home/u/Documents/pic.bin", "image/png"},
		{"/home/u/Documents/notes.txt", "application/octet-stream"},
	}
	for _, tt := range tests {
		f, err := l.FileFromPath(tt.path)
		require.NoError(t, err)
		got, err := f.ContentType()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestLocal_Bookmarks(t *testing.T) {
	l, fsys := newMemLocal(t)

	f, err := l.FileFromPath("/home/u/Documents/notes.txt")
	require.NoError(t, err)
	token := f.Bookmark()

	got, err := l.FileFromBookmark(token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f.Path(), got.Path())

	d, err := l.FolderFromBookmark(token)
	assert.NoError(t, err)
	assert.Nil(t, d, "file token does not name a folder")

	for _, bad := range []string{"", "garbage", token + "x", strings.Replace(token, "uibm1.f", "uibm1.d", 1), "uibm1.x.00000000"} {
		got, err := l.FileFromBookmark(bad)
		assert.NoError(t, err, bad)
		assert.Nil(t, got, bad)
	}

	// Revoked: the file is gone.
	require.NoError(t, hackpadfs.Remove(fsys, "home/u/Documents/notes.txt"))
	got, err = l.FileFromBookmark(token)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocal_BookmarkParentReplacedByFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "c.txt"), []byte("x"), 0o644))

	l := NewLocal(WithHome(dir))
	d, err := l.FolderFromPath(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	f, err := l.FileFromPath(filepath.Join(dir, "a", "b", "c.txt"))
	require.NoError(t, err)
	folderToken, fileToken := d.Bookmark(), f.Bookmark()

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "a")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("now a file"), 0o644))

	gotDir, err := l.FolderFromBookmark(folderToken)
	assert.NoError(t, err)
	assert.Nil(t, gotDir)

	gotFile, err := l.FileFromBookmark(fileToken)
	assert.NoError(t, err)
	assert.Nil(t, gotFile)
}

func TestBookmark_Format(t *testing.T) {
	token := mintBookmark(bookmarkFolder, "/a b/ü")
	assert.True(t, strings.HasPrefix(token, "uibm1.d"))

	kind, p, ok := parseBookmark(token)
	require.True(t, ok)
	assert.Equal(t, bookmarkFolder, kind)
	assert.Equal(t, "/a b/ü", p)
}

func TestLocal_WellKnownFolder(t *testing.T) {
	l, _ := newMemLocal(t)
	tests := []struct {
		w    WellKnownFolder
		want string
	}{
		{FolderHome, "/home/u"},
		{FolderDocuments, "/home/u/Documents"},
		{FolderPictures, "/home/u/Bilder"},
		{FolderMusic, "/home/u/Music"},
		{FolderDesktop, "/home/u/Desktop"},
	}
	for _, tt := range tests {
		t.Run(tt.w.String(), func(t *testing.T) {
			got, err := l.WellKnownFolderPath(tt.w)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := l.WellKnownFolderPath(FolderUnspecified)
	assert.Error(t, err)

	d, err := l.WellKnownFolder(FolderPictures)
	require.NoError(t, err)
	assert.Equal(t, "Bilder", d.Name())

	_, err = l.WellKnownFolder(FolderVideos)
	assert.ErrorIs(t, err, hackpadfs.ErrNotExist)
}

func TestFileTypeFilter_Match(t *testing.T) {
	images := FileTypeFilter{Name: "Images", Patterns: []string{"*.png", "*.{jpg,jpeg}"}}
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"A.PNG", true},
		{"/some/dir/photo.jpeg", true},
		{`C:\pics\photo.jpg`, true},
		{"notes.txt", false},
		{"png", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, images.Match(tt.name), tt.name)
	}

	assert.True(t, FileTypeFilter{Name: "All"}.Match("anything"))

	assert.True(t, MatchAny(nil, "x"))
	assert.True(t, MatchAny([]FileTypeFilter{{Patterns: []string{"*.txt"}}, images}, "b.png"))
	assert.False(t, MatchAny([]FileTypeFilter{images}, "b.txt"))
}
