// Package portal is a storage backend for the XDG desktop portal's
// FileChooser interface over the D-Bus session bus.
//
// Importing the package registers the backend with priority 100.
package portal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/godbus/dbus/v5"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/storage"
)

// Name is the backend name.
const Name = "portal"

const (
	portalDest   = "org.freedesktop.portal.Desktop"
	portalPath   = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	chooserIface = "org.freedesktop.portal.FileChooser"
	requestIface = "org.freedesktop.portal.Request"
)

// Response codes of org.freedesktop.portal.Request.Response.
const (
	responseSuccess   = 0
	responseCancelled = 1
)

// ErrInteractionEnded reports a portal request that ended without the user
// either choosing or cancelling, e.g. because the dialog was torn down.
var ErrInteractionEnded = errors.New("portal: interaction ended")

func init() {
	storage.Register(Name, 100, Factory(nil))
}

// Provider talks to a running portal. Close releases its bus connection.
type Provider struct {
	conn    *dbus.Conn
	obj     dbus.BusObject
	local   *storage.Local
	version uint32
	tokens  atomic.Uint64
}

// Factory probes the session bus for the portal. It reports the backend
// unavailable when there is no session bus or nothing owns the portal
// name. A nil local means the OS filesystem.
func Factory(local *storage.Local) storage.Factory {
	return func(ctx context.Context) (storage.Provider, error) {
		l := local
		if l == nil {
			l = storage.NewLocal()
		}
		conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
		if err != nil {
			ui.Logger().Debug("storage: no session bus", "err", err)
			return nil, nil
		}

		var owned bool
		err = conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.NameHasOwner", 0, portalDest).Store(&owned)
		if err != nil {
			conn.Close()
			return nil, err
		}
		if !owned {
			conn.Close()
			return nil, nil
		}

		obj := conn.Object(portalDest, portalPath)
		version := uint32(1)
		if v, err := obj.GetProperty(chooserIface + ".version"); err == nil {
			if n, ok := v.Value().(uint32); ok {
				version = n
			}
		}
		ui.Logger().Debug("storage: portal found", "version", version)
		return &Provider{conn: conn, obj: obj, local: l, version: version}, nil
	}
}

// Close closes the bus connection.
func (p *Provider) Close() error { return p.conn.Close() }

func (p *Provider) Name() string  { return Name }
func (p *Provider) CanOpen() bool { return true }
func (p *Provider) CanSave() bool { return true }

// CanPickFolder reports whether the portal supports directory selection,
// which arrived in version 3 of the interface.
func (p *Provider) CanPickFolder() bool { return p.version >= 3 }

// OpenFilePicker calls FileChooser.OpenFile.
func (p *Provider) OpenFilePicker(ctx context.Context, opts storage.OpenOptions) ([]*storage.File, error) {
	o := map[string]dbus.Variant{
		"modal":    dbus.MakeVariant(true),
		"multiple": dbus.MakeVariant(opts.AllowMultiple),
	}
	if len(opts.Filters) > 0 {
		o["filters"] = dbus.MakeVariant(encodeFilters(opts.Filters))
	}
	p.setFolder(o, opts.StartFolder, opts.StartLocation)

	paths, err := p.request(ctx, "OpenFile", titleOr(opts.Title, "Open File"), o)
	if err != nil {
		return nil, err
	}
	files := make([]*storage.File, 0, len(paths))
	for _, name := range paths {
		f, err := p.local.FileFromPath(name)
		if err != nil {
			return nil, &storage.BackendError{Backend: Name, Op: "OpenFile", Err: err}
		}
		files = append(files, f)
	}
	return files, nil
}

// SaveFilePicker calls FileChooser.SaveFile.
func (p *Provider) SaveFilePicker(ctx context.Context, opts storage.SaveOptions) (*storage.File, error) {
	o := map[string]dbus.Variant{
		"modal": dbus.MakeVariant(true),
	}
	if name := suggestedName(opts); name != "" {
		o["current_name"] = dbus.MakeVariant(name)
	}
	if len(opts.Filters) > 0 {
		o["filters"] = dbus.MakeVariant(encodeFilters(opts.Filters))
	}
	p.setFolder(o, opts.StartFolder, opts.StartLocation)

	paths, err := p.request(ctx, "SaveFile", titleOr(opts.Title, "Save File"), o)
	if err != nil || len(paths) == 0 {
		return nil, err
	}
	f, err := p.local.NewFile(paths[0])
	if err != nil {
		return nil, &storage.BackendError{Backend: Name, Op: "SaveFile", Err: err}
	}
	return f, nil
}

// OpenFolderPicker calls FileChooser.OpenFile in directory mode.
func (p *Provider) OpenFolderPicker(ctx context.Context, opts storage.FolderOptions) ([]*storage.Folder, error) {
	if !p.CanPickFolder() {
		return nil, &storage.BackendError{Backend: Name, Op: "OpenFile", Err: errors.ErrUnsupported}
	}
	o := map[string]dbus.Variant{
		"modal":     dbus.MakeVariant(true),
		"directory": dbus.MakeVariant(true),
		"multiple":  dbus.MakeVariant(opts.AllowMultiple),
	}
	p.setFolder(o, opts.StartFolder, opts.StartLocation)

	paths, err := p.request(ctx, "OpenFile", titleOr(opts.Title, "Select Folder"), o)
	if err != nil {
		return nil, err
	}
	folders := make([]*storage.Folder, 0, len(paths))
	for _, name := range paths {
		d, err := p.local.FolderFromPath(name)
		if err != nil {
			return nil, &storage.BackendError{Backend: Name, Op: "OpenFile", Err: err}
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

func (p *Provider) setFolder(o map[string]dbus.Variant, start *storage.Folder, loc storage.WellKnownFolder) {
	dir := ""
	switch {
	case start != nil:
		dir = start.Path()
	case loc != storage.FolderUnspecified:
		dir, _ = p.local.WellKnownFolderPath(loc)
	}
	if dir != "" {
		// current_folder is a NUL-terminated byte string.
		o["current_folder"] = dbus.MakeVariant(append([]byte(dir), 0))
	}
}

// request issues a FileChooser call and waits for its Response signal. It
// subscribes before calling so the reply cannot be missed.
func (p *Provider) request(ctx context.Context, method, title string, opts map[string]dbus.Variant) ([]string, error) {
	names := p.conn.Names()
	if len(names) == 0 {
		return nil, &storage.BackendError{Backend: Name, Op: method, Err: errors.New("connection has no unique name")}
	}
	token := fmt.Sprintf("gogpu_ui_%d", p.tokens.Add(1))
	opts["handle_token"] = dbus.MakeVariant(token)
	want := requestPath(names[0], token)

	signals := make(chan *dbus.Signal, 8)
	p.conn.Signal(signals)
	defer p.conn.RemoveSignal(signals)

	match := responseMatch(want)
	if err := p.conn.AddMatchSignalContext(ctx, match...); err != nil {
		return nil, &storage.BackendError{Backend: Name, Op: method, Err: err}
	}
	defer p.conn.RemoveMatchSignal(match...)

	var handle dbus.ObjectPath
	if err := p.obj.CallWithContext(ctx, chooserIface+"."+method, 0, "", title, opts).Store(&handle); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &storage.BackendError{Backend: Name, Op: method, Err: err}
	}
	if handle != want {
		// Portals older than version 0.9 pick their own request path.
		extra := responseMatch(handle)
		if err := p.conn.AddMatchSignalContext(ctx, extra...); err != nil {
			return nil, &storage.BackendError{Backend: Name, Op: method, Err: err}
		}
		defer p.conn.RemoveMatchSignal(extra...)
	}

	for {
		select {
		case <-ctx.Done():
			p.conn.Object(portalDest, handle).Go(requestIface+".Close", dbus.FlagNoReplyExpected, nil)
			return nil, ctx.Err()
		case sig, ok := <-signals:
			if !ok {
				return nil, &storage.BackendError{Backend: Name, Op: method, Err: dbus.ErrClosed}
			}
			if sig.Path != handle || sig.Name != requestIface+".Response" {
				continue
			}
			paths, err := decodeResponse(sig.Body)
			if err != nil {
				return nil, &storage.BackendError{Backend: Name, Op: method, Err: err}
			}
			return paths, nil
		}
	}
}

func responseMatch(path dbus.ObjectPath) []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
}

// requestPath predicts the Request object path for a sender and token.
func requestPath(sender, token string) dbus.ObjectPath {
	s := strings.ReplaceAll(strings.TrimPrefix(sender, ":"), ".", "_")
	return dbus.ObjectPath("/org/freedesktop/portal/desktop/request/" + s + "/" + token)
}

// filter is the D-Bus shape of a FileChooser filter: (sa(us)).
type filter struct {
	Name     string
	Patterns []filterPattern
}

type filterPattern struct {
	Kind    uint32 // 0 glob, 1 MIME type
	Pattern string
}

func encodeFilters(fs []storage.FileTypeFilter) []filter {
	out := make([]filter, 0, len(fs))
	for _, f := range fs {
		e := filter{Name: f.Name}
		for _, p := range f.Patterns {
			e.Patterns = append(e.Patterns, filterPattern{0, p})
		}
		for _, m := range f.MIMETypes {
			e.Patterns = append(e.Patterns, filterPattern{1, m})
		}
		if len(e.Patterns) > 0 {
			out = append(out, e)
		}
	}
	return out
}

// decodeResponse turns a Response signal body into local paths. A
// cancelled interaction yields no paths; any other non-success code is an
// error.
func decodeResponse(body []any) ([]string, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("malformed response: %d values", len(body))
	}
	code, ok := body[0].(uint32)
	if !ok {
		return nil, fmt.Errorf("malformed response code %T", body[0])
	}
	switch code {
	case responseSuccess:
	case responseCancelled:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: response code %d", ErrInteractionEnded, code)
	}
	results, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("malformed response results %T", body[1])
	}
	v, ok := results["uris"]
	if !ok {
		return nil, nil
	}
	uris, ok := v.Value().([]string)
	if !ok {
		return nil, fmt.Errorf("malformed uris %T", v.Value())
	}
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		p, err := uriPath(u)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func uriPath(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported uri %q", raw)
	}
	return u.Path, nil
}

func titleOr(title, def string) string {
	if title == "" {
		return def
	}
	return title
}

func suggestedName(opts storage.SaveOptions) string {
	name := opts.SuggestedName
	if name == "" || opts.DefaultExtension == "" || strings.Contains(name, ".") {
		return name
	}
	return name + "." + strings.TrimPrefix(opts.DefaultExtension, ".")
}

var _ storage.Provider = (*Provider)(nil)
