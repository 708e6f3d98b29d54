// Package storage abstracts the platform's file and folder pickers.
//
// A Provider opens native pickers and resolves bookmarks, opaque tokens
// that refer back to a file or folder picked earlier. Files and folders
// are returned as handles bound to a Local filesystem, which may be the
// real OS filesystem or any hackpadfs.FS.
//
// Most applications use a Composite: it is given backend factories in
// priority order, probes them on first use, and forwards every call to the
// first backend that turned out to be available:
//
//	p := storage.NewComposite(portal.Factory(nil), dialog.Factory(nil))
//	files, err := p.OpenFilePicker(ctx, storage.OpenOptions{AllowMultiple: true})
//	if err != nil {
//	    return err // no backend, or the backend failed
//	}
//	if len(files) == 0 {
//	    return nil // the user cancelled
//	}
//
// Backends register themselves with Register when imported; NewDefault
// builds a Composite from every registered backend.
//
// # Outcomes
//
// Cancellation and failure are distinct. A cancelled picker returns an
// empty result and a nil error; an unknown or stale bookmark returns a nil
// handle and a nil error. Errors are reserved for failures.
package storage
