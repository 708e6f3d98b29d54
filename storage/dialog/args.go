package dialog

import (
	"path/filepath"
	"strings"

	"github.com/gogpu/ui/storage"
)

func openArgs(t Tool, opts storage.OpenOptions, dir string) []string {
	title := titleOr(opts.Title, "Open File")
	if t == KDialog {
		args := []string{"--title", title, "--getopenfilename", dirOr(dir)}
		if f := kdialogFilter(opts.Filters); f != "" {
			args = append(args, f)
		}
		if opts.AllowMultiple {
			args = append(args, "--multiple", "--separate-output")
		}
		return args
	}

	args := []string{"--file-selection", "--title=" + title}
	if opts.AllowMultiple {
		args = append(args, "--multiple", "--separator=\n")
	}
	if dir != "" {
		args = append(args, "--filename="+withSlash(dir))
	}
	return append(args, zenityFilters(opts.Filters)...)
}

func saveArgs(t Tool, opts storage.SaveOptions, dir string) []string {
	title := titleOr(opts.Title, "Save File")
	name := opts.SuggestedName
	if name != "" && opts.DefaultExtension != "" && filepath.Ext(name) == "" {
		name += "." + strings.TrimPrefix(opts.DefaultExtension, ".")
	}
	start := dir
	if name != "" {
		start = filepath.Join(dir, name)
	}

	if t == KDialog {
		args := []string{"--title", title, "--getsavefilename", dirOr(start)}
		if f := kdialogFilter(opts.Filters); f != "" {
			args = append(args, f)
		}
		return args
	}

	args := []string{"--file-selection", "--save", "--title=" + title}
	if opts.ShowOverwritePrompt {
		args = append(args, "--confirm-overwrite")
	}
	switch {
	case name != "":
		args = append(args, "--filename="+start)
	case dir != "":
		args = append(args, "--filename="+withSlash(dir))
	}
	return append(args, zenityFilters(opts.Filters)...)
}

func folderArgs(t Tool, opts storage.FolderOptions, dir string) []string {
	title := titleOr(opts.Title, "Select Folder")
	if t == KDialog {
		args := []string{"--title", title, "--getexistingdirectory", dirOr(dir)}
		if opts.AllowMultiple {
			args = append(args, "--multiple", "--separate-output")
		}
		return args
	}

	args := []string{"--file-selection", "--directory", "--title=" + title}
	if opts.AllowMultiple {
		args = append(args, "--multiple", "--separator=\n")
	}
	if dir != "" {
		args = append(args, "--filename="+withSlash(dir))
	}
	return args
}

// zenityFilters renders "Name | *.a *.b" arguments.
func zenityFilters(fs []storage.FileTypeFilter) []string {
	var args []string
	for _, f := range fs {
		if len(f.Patterns) == 0 {
			continue
		}
		name := f.Name
		if name == "" {
			name = strings.Join(f.Patterns, " ")
		}
		args = append(args, "--file-filter="+name+" | "+strings.Join(f.Patterns, " "))
	}
	return args
}

// kdialogFilter renders "Name (*.a *.b)|Other (*.c)".
func kdialogFilter(fs []storage.FileTypeFilter) string {
	var parts []string
	for _, f := range fs {
		if len(f.Patterns) == 0 {
			continue
		}
		parts = append(parts, strings.TrimSpace(f.Name+" ("+strings.Join(f.Patterns, " ")+")"))
	}
	return strings.Join(parts, "|")
}

func titleOr(title, def string) string {
	if title == "" {
		return def
	}
	return title
}

func dirOr(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func withSlash(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}
