package memo

import "path/filepath"

// Buckets for argument-derived subfolders. Malformed first arguments never
// fail resolution; they degrade into these.
const (
	emptySubfolder  = "empty"
	globalSubfolder = "global"
)

// subfolderForArgs derives the cache subfolder from the first positional
// argument.
func subfolderForArgs(args []any) string {
	if len(args) == 0 {
		return globalSubfolder
	}
	s, ok := args[0].(string)
	if !ok {
		return globalSubfolder
	}
	if s == "" {
		return emptySubfolder
	}
	return s
}

// resolvePath produces the cache directory and entry path for one
// invocation. The path is a function of the subfolder and registration name
// only; later arguments never influence it. Resolution never fails.
func (m *Memoizer) resolvePath(reg Registration, args []any) (subfolder, dir, path string) {
	switch reg.Mode {
	case SubfolderExplicit:
		subfolder = reg.Subfolder
	default:
		subfolder = subfolderForArgs(args)
	}

	dir = m.cfg.Root
	if subfolder != "" {
		dir = filepath.Join(m.cfg.Root, sanitizeSegment(subfolder))
	}
	path = filepath.Join(dir, reg.Name+"."+m.cfg.Extension)
	return subfolder, dir, path
}
