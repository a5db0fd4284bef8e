package stdlib

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed data/*.toml
var builtinFS embed.FS

var (
	// ErrUnknownStd is returned for a std name that is neither builtin nor a file.
	ErrUnknownStd = errors.New("unknown standard library")
	// ErrBaseCycle is returned when libraries name each other as base.
	ErrBaseCycle = errors.New("standard library base cycle")
)

// maxBaseDepth bounds `base` chains; real libraries are one or two deep.
const maxBaseDepth = 8

type libraryFile struct {
	Name    string               `toml:"name"`
	Base    string               `toml:"base"`
	Classes map[string]classFile `toml:"roblox_classes"`
}

type classFile struct {
	Superclass string   `toml:"superclass"`
	Properties []string `toml:"properties"`
	Events     []string `toml:"events"`
}

// BuiltinNames lists the embedded libraries.
func BuiltinNames() []string {
	return []string{"lua51", "roblox"}
}

// IsBuiltin reports whether name refers to an embedded library.
func IsBuiltin(name string) bool {
	for _, n := range BuiltinNames() {
		if n == name {
			return true
		}
	}
	return false
}

// Builtin loads an embedded library by name.
func Builtin(name string) (*Library, error) {
	return builtin(name, 0)
}

func builtin(name string, depth int) (*Library, error) {
	if !IsBuiltin(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStd, name)
	}
	data, err := builtinFS.ReadFile("data/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("builtin std %q: %w", name, err)
	}
	return parse(data, "builtin:"+name, "", depth)
}

// Load reads a library from a TOML file. A `base` is resolved as a builtin
// name or as a path relative to the file.
func Load(path string) (*Library, error) {
	return load(path, 0)
}

func load(path string, depth int) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read std %q: %w", path, err)
	}
	return parse(data, path, filepath.Dir(path), depth)
}

// Parse decodes a library from TOML. name is used in error messages.
// Relative bases are resolved against the working directory.
func Parse(data []byte, name string) (*Library, error) {
	return parse(data, name, ".", 0)
}

// Resolve turns a std setting into a library: a builtin name, or a path
// (with or without the .toml suffix) relative to dir.
func Resolve(spec, dir string) (*Library, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownStd)
	}
	if IsBuiltin(spec) {
		return Builtin(spec)
	}
	path := spec
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	if filepath.Ext(path) != ".toml" {
		path += ".toml"
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStd, spec)
		}
		return nil, fmt.Errorf("failed to stat std %q: %w", path, err)
	}
	return Load(path)
}

func parse(data []byte, name, dir string, depth int) (*Library, error) {
	if depth > maxBaseDepth {
		return nil, fmt.Errorf("%s: %w", name, ErrBaseCycle)
	}
	var f libraryFile
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", name, undecoded[0].String())
	}

	libName := strings.TrimSpace(f.Name)
	if libName == "" {
		libName = strings.TrimSuffix(filepath.Base(name), ".toml")
	}
	lib := newLibrary(libName, strings.TrimSpace(f.Base))

	if lib.Base != "" {
		base, err := resolveBase(lib.Base, dir, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%s: base %q: %w", name, lib.Base, err)
		}
		for cname, c := range base.classes {
			lib.classes[cname] = c
		}
	}

	for cname, c := range f.Classes {
		if strings.TrimSpace(cname) == "" {
			return nil, fmt.Errorf("%s: empty class name", name)
		}
		// объявление в наследнике полностью заменяет класс из base
		lib.classes[cname] = newClass(cname, strings.TrimSpace(c.Superclass), c.Properties, c.Events)
	}
	return lib, nil
}

func resolveBase(base, dir string, depth int) (*Library, error) {
	if IsBuiltin(base) {
		return builtin(base, depth)
	}
	path := base
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	if filepath.Ext(path) != ".toml" {
		path += ".toml"
	}
	return load(path, depth)
}
