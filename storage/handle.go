package storage

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"github.com/hack-pad/hackpadfs"
)

// Item is a File or a Folder.
type Item interface {
	Name() string
	Path() string
	Bookmark() string
}

// File is a handle to a file on a Local filesystem.
type File struct {
	local *Local
	path  string
}

// Name returns the base name.
func (f *File) Name() string { return path.Base(f.path) }

// Path returns the OS path.
func (f *File) Path() string { return f.local.osPath(f.path) }

// Bookmark returns a token that FileFromBookmark resolves back to f.
func (f *File) Bookmark() string { return mintBookmark(bookmarkFile, f.Path()) }

// Parent returns the containing folder.
func (f *File) Parent() *Folder { return &Folder{local: f.local, path: path.Dir(f.path)} }

// Stat returns the file's metadata.
func (f *File) Stat() (fs.FileInfo, error) { return hackpadfs.Stat(f.local.fsys, f.path) }

// Open opens the file for reading.
func (f *File) Open() (io.ReadCloser, error) { return f.local.fsys.Open(f.path) }

// ReadAll returns the file's contents.
func (f *File) ReadAll() ([]byte, error) { return hackpadfs.ReadFile(f.local.fsys, f.path) }

// Write replaces the file's contents, creating it if needed.
func (f *File) Write(data []byte) error {
	return hackpadfs.WriteFullFile(f.local.fsys, f.path, data, 0o644)
}

// headSize is enough for filetype to recognize every type it knows.
const headSize = 261

// ContentType sniffs the MIME type from the first bytes, falling back to
// the extension and then to application/octet-stream.
func (f *File) ContentType() (string, error) {
	r, err := f.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	head := make([]byte, headSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if kind, err := filetype.Match(head[:n]); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value, nil
	}
	ext := strings.TrimPrefix(path.Ext(f.path), ".")
	if kind := filetype.GetType(strings.ToLower(ext)); kind != filetype.Unknown {
		return kind.MIME.Value, nil
	}
	return "application/octet-stream", nil
}

// Folder is a handle to a directory on a Local filesystem.
type Folder struct {
	local *Local
	path  string
}

// Name returns the base name; the root folder is named "/".
func (d *Folder) Name() string {
	if d.path == "." {
		return "/"
	}
	return path.Base(d.path)
}

// Path returns the OS path.
func (d *Folder) Path() string { return d.local.osPath(d.path) }

// Bookmark returns a token that FolderFromBookmark resolves back to d.
func (d *Folder) Bookmark() string { return mintBookmark(bookmarkFolder, d.Path()) }

// Children lists the folder's entries sorted by name.
func (d *Folder) Children() ([]Item, error) {
	entries, err := hackpadfs.ReadDir(d.local.fsys, d.path)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		p := path.Join(d.path, e.Name())
		if e.IsDir() {
			items = append(items, &Folder{local: d.local, path: p})
		} else {
			items = append(items, &File{local: d.local, path: p})
		}
	}
	slices.SortFunc(items, func(a, b Item) int { return strings.Compare(a.Name(), b.Name()) })
	return items, nil
}

// File returns the existing file name inside d.
func (d *Folder) File(name string) (*File, error) {
	return d.local.FileFromPath(d.local.osPath(path.Join(d.path, name)))
}

// CreateFile writes data to a new or existing file name inside d.
func (d *Folder) CreateFile(name string, data []byte) (*File, error) {
	f := &File{local: d.local, path: path.Join(d.path, name)}
	if err := f.Write(data); err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFolder creates name inside d, along with any missing parents.
func (d *Folder) CreateFolder(name string) (*Folder, error) {
	p := path.Join(d.path, name)
	if err := hackpadfs.MkdirAll(d.local.fsys, p, 0o755); err != nil {
		return nil, err
	}
	return &Folder{local: d.local, path: p}, nil
}
