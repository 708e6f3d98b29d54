// Command uipick opens the platform file picker and prints what was chosen.
//
// Usage:
//
//	uipick [flags] open|save|folder|resolve [bookmark]
//
// Each chosen item is printed as "path<TAB>bookmark", plus the content type
// for files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/storage"
	_ "github.com/gogpu/ui/storage/dialog"
	_ "github.com/gogpu/ui/storage/portal"
)

func main() {
	var (
		multiple = flag.Bool("multiple", false, "allow selecting several items")
		filter   = flag.String("filter", "", `file filter, e.g. "Images:*.png,*.jpg"`)
		name     = flag.String("name", "", "suggested name for save")
		start    = flag.String("start", "", "start folder: home, documents, downloads, pictures, ...")
		timeout  = flag.Duration("timeout", 0, "give up after this long (0 waits forever)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: uipick [flags] open|save|folder|resolve [bookmark]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	loc, err := parseStart(*start)
	if err != nil {
		log.Fatal(err)
	}
	filters, err := parseFilter(*filter)
	if err != nil {
		log.Fatal(err)
	}

	p := storage.NewDefault()
	var items []storage.Item
	switch cmd := flag.Arg(0); cmd {
	case "open":
		var files []*storage.File
		files, err = p.OpenFilePicker(ctx, storage.OpenOptions{Filters: filters, AllowMultiple: *multiple, StartLocation: loc})
		for _, f := range files {
			items = append(items, f)
		}
	case "save":
		var f *storage.File
		f, err = p.SaveFilePicker(ctx, storage.SaveOptions{Filters: filters, SuggestedName: *name, StartLocation: loc, ShowOverwritePrompt: true})
		if f != nil {
			items = append(items, f)
		}
	case "folder":
		var folders []*storage.Folder
		folders, err = p.OpenFolderPicker(ctx, storage.FolderOptions{AllowMultiple: *multiple, StartLocation: loc})
		for _, d := range folders {
			items = append(items, d)
		}
	case "resolve":
		items, err = resolve(ctx, p, flag.Arg(1))
	default:
		flag.Usage()
		os.Exit(2)
	}

	switch {
	case errors.Is(err, storage.ErrNoBackendAvailable):
		log.Fatal("no file picker available: install xdg-desktop-portal, zenity or kdialog")
	case err != nil:
		log.Fatal(err)
	case len(items) == 0:
		log.Print("cancelled")
		os.Exit(1)
	}

	if b, ok := p.Backend(); ok {
		log.Printf("backend: %s", b.Name())
	}
	for _, it := range items {
		line := it.Path() + "\t" + it.Bookmark()
		if f, ok := it.(*storage.File); ok {
			if ct, err := f.ContentType(); err == nil {
				line += "\t" + ct
			}
		}
		fmt.Println(line)
	}
}

func resolve(ctx context.Context, p storage.Provider, token string) ([]storage.Item, error) {
	if token == "" {
		return nil, errors.New("resolve needs a bookmark")
	}
	f, err := p.FileFromBookmark(ctx, token)
	if err != nil || f != nil {
		return []storage.Item{f}, err
	}
	d, err := p.FolderFromBookmark(ctx, token)
	if err != nil || d == nil {
		return nil, err
	}
	return []storage.Item{d}, nil
}

func parseStart(s string) (storage.WellKnownFolder, error) {
	if s == "" {
		return storage.FolderUnspecified, nil
	}
	for w := storage.FolderHome; w <= storage.FolderVideos; w++ {
		if strings.EqualFold(w.String(), s) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown start folder %q", s)
}

// parseFilter reads "Name:pat1,pat2;Other:pat3".
func parseFilter(s string) ([]storage.FileTypeFilter, error) {
	if s == "" {
		return nil, nil
	}
	var out []storage.FileTypeFilter
	for _, part := range strings.Split(s, ";") {
		name, pats, ok := strings.Cut(part, ":")
		if !ok {
			name, pats = "", part
		}
		f := storage.FileTypeFilter{Name: strings.TrimSpace(name)}
		for _, p := range strings.Split(pats, ",") {
			if p = strings.TrimSpace(p); p != "" {
				f.Patterns = append(f.Patterns, p)
			}
		}
		if len(f.Patterns) == 0 {
			return nil, fmt.Errorf("filter %q has no patterns", part)
		}
		out = append(out, f)
	}
	return out, nil
}
