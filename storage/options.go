package storage

import (
	"path"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// WellKnownFolder names a standard user folder.
type WellKnownFolder int

const (
	// FolderUnspecified leaves the start location to the backend.
	FolderUnspecified WellKnownFolder = iota
	FolderHome
	FolderDesktop
	FolderDocuments
	FolderDownloads
	FolderMusic
	FolderPictures
	FolderVideos
)

var wellKnownNames = [...]string{"Unspecified", "Home", "Desktop", "Documents", "Downloads", "Music", "Pictures", "Videos"}

// String returns the folder name.
func (w WellKnownFolder) String() string {
	if int(w) < len(wellKnownNames) && w >= 0 {
		return wellKnownNames[w]
	}
	return "Unknown"
}

// FileTypeFilter restricts a picker to matching files.
type FileTypeFilter struct {
	// Name is shown to the user, e.g. "Images".
	Name string
	// Patterns are shell globs matched against the base name, e.g. "*.png".
	Patterns []string
	// MIMETypes are offered to backends that filter by type.
	MIMETypes []string
}

var globCache sync.Map // pattern -> glob.Glob

func compiled(pattern string) (glob.Glob, error) {
	if g, ok := globCache.Load(pattern); ok {
		return g.(glob.Glob), nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, err
	}
	globCache.Store(pattern, g)
	return g, nil
}

// Match reports whether the base name of name matches one of the
// patterns, ignoring case. A filter without patterns matches everything;
// invalid patterns never match.
func (f FileTypeFilter) Match(name string) bool {
	if len(f.Patterns) == 0 {
		return true
	}
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	for _, p := range f.Patterns {
		g, err := compiled(p)
		if err != nil {
			continue
		}
		if g.Match(base) {
			return true
		}
	}
	return false
}

// MatchAny reports whether name passes at least one filter. An empty
// filter list accepts everything.
func MatchAny(filters []FileTypeFilter, name string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f.Match(name) {
			return true
		}
	}
	return false
}

// OpenOptions configures an open-file picker.
type OpenOptions struct {
	Title         string
	Filters       []FileTypeFilter
	AllowMultiple bool
	// StartLocation is used when StartFolder is nil.
	StartLocation WellKnownFolder
	StartFolder   *Folder
}

// SaveOptions configures a save-file picker.
type SaveOptions struct {
	Title            string
	Filters          []FileTypeFilter
	SuggestedName    string
	DefaultExtension string
	StartLocation    WellKnownFolder
	StartFolder      *Folder
	// ShowOverwritePrompt asks the backend to confirm replacing an
	// existing file.
	ShowOverwritePrompt bool
}

// FolderOptions configures a folder picker.
type FolderOptions struct {
	Title         string
	AllowMultiple bool
	StartLocation WellKnownFolder
	StartFolder   *Folder
}
