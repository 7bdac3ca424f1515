package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font"
	"github.com/npillmayer/schuko"
)

// Aliases of fonts packaged with this module.
const (
	GoRegular = "go-regular"
	GoMono    = "go-mono"
)

// NotFound returns an application error for a missing face.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// Resolver locates font files and caches parsed fonts in a registry.
type Resolver struct {
	Dirs     []string // searched before system fonts
	Registry *font.Registry
	find     func(string) (string, error)
}

// NewResolver creates a resolver which caches into the global font registry.
// If conf is not nil, key 'fontdirs' may hold a list of directories,
// separated by the OS path list separator.
func NewResolver(conf schuko.Configuration) *Resolver {
	r := &Resolver{
		Registry: font.GlobalRegistry(),
		find:     findfont.Find,
	}
	if conf != nil {
		if dirs := conf.GetString("fontdirs"); dirs != "" {
			r.Dirs = filepath.SplitList(dirs)
			tracer().Debugf("font search directories: %v", r.Dirs)
		}
	}
	return r
}

// ResolveFace returns the font for a face reference. Resolution order is:
// registry cache, packaged fonts, file path, configured directories, system
// fonts.
func (r *Resolver) ResolveFace(name string) (*font.ScalableFont, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.Error(core.EINVALID, "empty face name")
	}
	if r.Registry != nil {
		if f, ok := r.Registry.Font(name); ok {
			return f, nil
		}
	}
	f, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	if r.Registry != nil {
		r.Registry.StoreFont(name, f)
	}
	return f, nil
}

func (r *Resolver) resolve(name string) (*font.ScalableFont, error) {
	switch font.NormalizeFontname(name) {
	case GoRegular, "go_sans", "gosans":
		return font.FallbackFont(), nil
	case GoMono, "go_mono", "gomono":
		return font.MonoFallbackFont(), nil
	}
	if isFile(name) {
		tracer().Debugf("%s is a font file", name)
		return load(name)
	}
	for _, dir := range r.Dirs {
		p := filepath.Join(dir, name)
		if isFile(p) {
			tracer().Debugf("found font %s in %s", name, dir)
			return load(p)
		}
	}
	if r.find != nil {
		fpath, err := r.find(name) // try to find as system font
		if err == nil && fpath != "" {
			tracer().Debugf("%s is a system font at %s", name, fpath)
			return load(fpath)
		}
	}
	tracer().Infof("cannot resolve face %s", name)
	return nil, NotFound(name)
}

func load(path string) (*font.ScalableFont, error) {
	f, err := font.LoadOpenTypeFont(path)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot load font file %s", path)
	}
	return f, nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
