// Package logos manages the branding images stamped onto figures. Logos
// live in a per-user store (os.UserConfigDir()/climplot/logos) with a YAML
// catalogue mapping names to file paths. A fresh store is seeded with a
// bundled mark as the default; adding a logo copies the file into the
// store.
package logos

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const catalogueFile = "logo_catalogue.yaml"

// bundled mark seeded into a fresh store
//
//go:embed data/climplot.png
var defaultMark []byte

// Store is an opened logo store.
type Store struct {
	dir       string
	catalogue string
	logos     map[string]string
}

type catalogueDoc struct {
	Logos map[string]string `yaml:"logos"`
}

// Open loads (creating if needed) the default per-user store.
func Open() (*Store, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("logos: no user config dir: %w", err)
	}
	return OpenAt(filepath.Join(cfg, "climplot", "logos"))
}

// OpenAt loads a store rooted at dir, creating the catalogue if missing.
func OpenAt(dir string) (*Store, error) {
	st := &Store{
		dir:       dir,
		catalogue: filepath.Join(dir, catalogueFile),
		logos:     map[string]string{},
	}
	if err := st.reload(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *Store) reload() error {
	raw, err := os.ReadFile(st.catalogue)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(st.dir, 0o755); mkErr != nil {
			return fmt.Errorf("logos: create store: %w", mkErr)
		}
		return st.seed()
	}
	if err != nil {
		return fmt.Errorf("logos: read catalogue: %w", err)
	}
	var doc catalogueDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("logos: parse catalogue: %w", err)
	}
	st.logos = doc.Logos
	if st.logos == nil {
		st.logos = map[string]string{}
	}
	for name, path := range st.logos {
		if _, err := os.Stat(path); err != nil {
			slog.Warn("logo file missing", "name", name, "path", path)
		}
	}
	return nil
}

// seed writes the bundled mark into a fresh store and makes it the
// default, so stamping works before any logo is installed.
func (st *Store) seed() error {
	path := filepath.Join(st.dir, "climplot.png")
	if err := os.WriteFile(path, defaultMark, 0o644); err != nil {
		return fmt.Errorf("logos: seed store: %w", err)
	}
	st.logos["climplot"] = path
	st.logos["default"] = path
	return st.save()
}

func (st *Store) save() error {
	raw, err := yaml.Marshal(catalogueDoc{Logos: st.logos})
	if err != nil {
		return err
	}
	return os.WriteFile(st.catalogue, raw, 0o644)
}

// Dir returns the store directory.
func (st *Store) Dir() string { return st.dir }

// Installed lists the catalogued logo names, sorted.
func (st *Store) Installed() []string {
	out := make([]string, 0, len(st.logos))
	for name := range st.logos {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Get returns the path of a logo by name.
func (st *Store) Get(name string) (string, bool) {
	p, ok := st.logos[name]
	return p, ok
}

// Default returns the path of the default logo, or "".
func (st *Store) Default() string { return st.logos["default"] }

// Set copies the image at path into the store and catalogues it. An empty
// name derives one from the file stem (dashes become underscores). The
// first logo of an emptied store also becomes the default. The stored
// path is returned.
func (st *Store) Set(path, name string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("logos: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("logos: %s is a directory", path)
	}

	if name == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name = strings.ReplaceAll(stem, "-", "_")
	}

	dst := filepath.Join(st.dir, filepath.Base(path))
	if dst != path {
		if err := copyFile(path, dst); err != nil {
			return "", fmt.Errorf("logos: install %s: %w", path, err)
		}
	}

	wasEmpty := len(st.logos) == 0
	st.logos[name] = dst
	if wasEmpty {
		st.logos["default"] = dst
	}
	if err := st.save(); err != nil {
		return "", err
	}
	return dst, nil
}

// SetDefault points the default entry at an already catalogued logo.
func (st *Store) SetDefault(name string) error {
	p, ok := st.logos[name]
	if !ok {
		return fmt.Errorf("logos: no logo named %q", name)
	}
	st.logos["default"] = p
	return st.save()
}

// Remove drops a logo from the catalogue, keeping the file on disk.
func (st *Store) Remove(name string) error {
	if _, ok := st.logos[name]; !ok {
		return fmt.Errorf("logos: no logo named %q", name)
	}
	delete(st.logos, name)
	return st.save()
}

// InstallRemote downloads a logo over https (or copies a file:// URL) into
// the store. Plain http is refused.
func (st *Store) InstallRemote(rawURL, name string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("logos: bad url: %w", err)
	}
	switch u.Scheme {
	case "https":
	case "file":
		return st.Set(u.Path, name)
	default:
		return "", fmt.Errorf("logos: refusing %q url (https only)", u.Scheme)
	}

	resp, err := http.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("logos: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("logos: fetch %s: %s", rawURL, resp.Status)
	}

	dst := filepath.Join(st.dir, filepath.Base(u.Path))
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return "", fmt.Errorf("logos: write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return st.Set(dst, name)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
