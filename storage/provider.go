package storage

import "context"

// Provider opens file and folder pickers and resolves bookmarks.
//
// Pickers block until the user answers or ctx is done. A cancelled picker
// returns an empty result and a nil error. Bookmark lookups return a nil
// handle and a nil error when the token does not resolve.
type Provider interface {
	// Name identifies the backend, e.g. "portal".
	Name() string

	CanOpen() bool
	CanSave() bool
	CanPickFolder() bool

	OpenFilePicker(ctx context.Context, opts OpenOptions) ([]*File, error)
	SaveFilePicker(ctx context.Context, opts SaveOptions) (*File, error)
	OpenFolderPicker(ctx context.Context, opts FolderOptions) ([]*Folder, error)

	FileFromBookmark(ctx context.Context, token string) (*File, error)
	FolderFromBookmark(ctx context.Context, token string) (*Folder, error)
}

// Factory probes for a backend. It returns (nil, nil) when the backend is
// unavailable on this system. A factory that fails must not leave side
// effects behind; its error is logged and the backend treated as
// unavailable.
type Factory func(ctx context.Context) (Provider, error)
