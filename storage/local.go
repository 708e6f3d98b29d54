package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/mitchellh/go-homedir"
)

// Local resolves OS paths to File and Folder handles over a hackpadfs.FS.
// The zero value is not usable; call NewLocal.
type Local struct {
	fsys hackpadfs.FS
	home string
}

// LocalOption configures a Local.
type LocalOption func(*localOptions)

type localOptions struct {
	fsys hackpadfs.FS
	home string
}

// WithFS serves handles from fsys instead of the OS filesystem. OS paths
// map to fsys paths by dropping the leading separator unless fsys
// provides its own mapping.
func WithFS(fsys hackpadfs.FS) LocalOption {
	return func(o *localOptions) { o.fsys = fsys }
}

// WithHome overrides the home directory used for well-known folders and
// "~" expansion.
func WithHome(dir string) LocalOption {
	return func(o *localOptions) { o.home = dir }
}

// NewLocal returns a Local over the OS filesystem, or over the filesystem
// given with WithFS.
func NewLocal(opts ...LocalOption) *Local {
	var o localOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = osfs.NewFS()
	}
	return &Local{fsys: o.fsys, home: o.home}
}

// FS returns the underlying filesystem.
func (l *Local) FS() hackpadfs.FS { return l.fsys }

// pathMapper is implemented by filesystems with their own notion of how
// OS paths map to fs paths, such as the hackpadfs os filesystem.
type pathMapper interface {
	FromOSPath(osPath string) (string, error)
	ToOSPath(fsPath string) (string, error)
}

// HomeDir returns the user's home directory.
func (l *Local) HomeDir() (string, error) {
	if l.home != "" {
		return l.home, nil
	}
	return homedir.Dir()
}

func (l *Local) expand(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := l.HomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, p[1:]), nil
	}
	return p, nil
}

func (l *Local) fsPath(osPath string) (string, error) {
	p, err := l.expand(osPath)
	if err != nil {
		return "", err
	}
	if m, ok := l.fsys.(pathMapper); ok {
		if !filepath.IsAbs(p) {
			if p, err = filepath.Abs(p); err != nil {
				return "", err
			}
		}
		return m.FromOSPath(p)
	}
	p = path.Clean("/" + filepath.ToSlash(p))
	if p == "/" {
		return ".", nil
	}
	return p[1:], nil
}

func (l *Local) osPath(fsPath string) string {
	if m, ok := l.fsys.(pathMapper); ok {
		if p, err := m.ToOSPath(fsPath); err == nil {
			return p
		}
	}
	if fsPath == "." {
		return "/"
	}
	return "/" + fsPath
}

// FileFromPath returns a handle to the existing file at p.
func (l *Local) FileFromPath(p string) (*File, error) {
	fp, err := l.fsPath(p)
	if err != nil {
		return nil, err
	}
	info, err := hackpadfs.Stat(l.fsys, fp)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFile, p)
	}
	return &File{local: l, path: fp}, nil
}

// NewFile returns a handle to p, which need not exist yet. Save pickers use
// it for the chosen destination.
func (l *Local) NewFile(p string) (*File, error) {
	fp, err := l.fsPath(p)
	if err != nil {
		return nil, err
	}
	if fp == "." {
		return nil, fmt.Errorf("%w: %s", ErrNotFile, p)
	}
	return &File{local: l, path: fp}, nil
}

// FolderFromPath returns a handle to the existing directory at p.
func (l *Local) FolderFromPath(p string) (*Folder, error) {
	fp, err := l.fsPath(p)
	if err != nil {
		return nil, err
	}
	info, err := hackpadfs.Stat(l.fsys, fp)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFolder, p)
	}
	return &Folder{local: l, path: fp}, nil
}

// FileFromBookmark resolves a token minted by File.Bookmark. It returns a
// nil handle and a nil error when the token is malformed, names a folder,
// or the file no longer exists.
func (l *Local) FileFromBookmark(token string) (*File, error) {
	kind, p, ok := parseBookmark(token)
	if !ok || kind != bookmarkFile {
		return nil, nil
	}
	f, err := l.FileFromPath(p)
	if stale(err, ErrNotFile) {
		return nil, nil
	}
	return f, err
}

// FolderFromBookmark resolves a token minted by Folder.Bookmark, with the
// same nil, nil outcome as FileFromBookmark for unusable tokens.
func (l *Local) FolderFromBookmark(token string) (*Folder, error) {
	kind, p, ok := parseBookmark(token)
	if !ok || kind != bookmarkFolder {
		return nil, nil
	}
	f, err := l.FolderFromPath(p)
	if stale(err, ErrNotFolder) {
		return nil, nil
	}
	return f, err
}

// stale reports whether err means a bookmarked item is gone, including a
// parent directory that has since been replaced by a file.
func stale(err, wrongKind error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, hackpadfs.ErrNotDir) || errors.Is(err, wrongKind)
}

var xdgKeys = map[WellKnownFolder]string{
	FolderDesktop:   "XDG_DESKTOP_DIR",
	FolderDocuments: "XDG_DOCUMENTS_DIR",
	FolderDownloads: "XDG_DOWNLOAD_DIR",
	FolderMusic:     "XDG_MUSIC_DIR",
	FolderPictures:  "XDG_PICTURES_DIR",
	FolderVideos:    "XDG_VIDEOS_DIR",
}

// WellKnownFolderPath returns the OS path of w. Locations configured in
// ~/.config/user-dirs.dirs take precedence over the English defaults.
func (l *Local) WellKnownFolderPath(w WellKnownFolder) (string, error) {
	home, err := l.HomeDir()
	if err != nil {
		return "", err
	}
	switch w {
	case FolderHome:
		return home, nil
	case FolderUnspecified:
		return "", fmt.Errorf("storage: no path for %v folder", w)
	}
	key, ok := xdgKeys[w]
	if !ok {
		return "", fmt.Errorf("storage: unknown folder %d", int(w))
	}
	if p, ok := l.userDir(home, key); ok {
		return p, nil
	}
	return filepath.Join(home, w.String()), nil
}

// WellKnownFolder returns a handle to w, which must exist.
func (l *Local) WellKnownFolder(w WellKnownFolder) (*Folder, error) {
	p, err := l.WellKnownFolderPath(w)
	if err != nil {
		return nil, err
	}
	return l.FolderFromPath(p)
}

func (l *Local) userDir(home, key string) (string, bool) {
	cfg, err := l.fsPath(filepath.Join(home, ".config", "user-dirs.dirs"))
	if err != nil {
		return "", false
	}
	data, err := hackpadfs.ReadFile(l.fsys, cfg)
	if err != nil {
		return "", false
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.HasPrefix(line, "#") || k != key {
			continue
		}
		v = strings.Trim(v, `"`)
		v = filepath.Clean(strings.Replace(v, "$HOME", home, 1))
		if v == "." || v == filepath.Clean(home) {
			return "", false
		}
		return v, true
	}
	return "", false
}
