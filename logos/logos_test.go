package logos

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFakeLogo(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenAtSeedsBundledMark(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logos")
	st, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, catalogueFile)); err != nil {
		t.Errorf("catalogue not created: %v", err)
	}
	// a fresh store ships a usable default
	path, ok := st.Get("climplot")
	if !ok {
		t.Fatalf("bundled mark not catalogued, have %v", st.Installed())
	}
	if st.Default() != path {
		t.Errorf("Default = %q, want %q", st.Default(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("bundled mark not written: %v", err)
	}
}

func TestSetCopiesAndCatalogues(t *testing.T) {
	src := writeFakeLogo(t, t.TempDir(), "acme-mark.png")
	st, err := OpenAt(filepath.Join(t.TempDir(), "logos"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	stored, err := st.Set(src, "")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if filepath.Dir(stored) != st.Dir() {
		t.Errorf("logo not copied into store: %s", stored)
	}
	// dash becomes underscore in the derived name
	if _, ok := st.Get("acme_mark"); !ok {
		t.Errorf("derived name missing, have %v", st.Installed())
	}
	// installing does not displace the seeded default
	if st.Default() == stored {
		t.Errorf("Set overrode the default: %q", st.Default())
	}
}

func TestSetPersistsAcrossOpens(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logos")
	src := writeFakeLogo(t, t.TempDir(), "lab.png")

	st, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if _, err := st.Set(src, "lab"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st2, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := st2.Get("lab"); !ok {
		t.Errorf("logo lost on reopen, have %v", st2.Installed())
	}
}

func TestSetMissingFile(t *testing.T) {
	st, err := OpenAt(filepath.Join(t.TempDir(), "logos"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if _, err := st.Set("/does/not/exist.png", ""); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := st.Set(t.TempDir(), ""); err == nil {
		t.Error("expected error for directory")
	}
}

func TestSetDefaultAndRemove(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenAt(filepath.Join(dir, "logos"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	a := writeFakeLogo(t, dir, "a.png")
	b := writeFakeLogo(t, dir, "b.png")
	if _, err := st.Set(a, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Set(b, "b"); err != nil {
		t.Fatal(err)
	}

	if err := st.SetDefault("b"); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}
	if got, _ := st.Get("b"); st.Default() != got {
		t.Errorf("Default = %q", st.Default())
	}

	if err := st.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := st.Get("a"); ok {
		t.Error("logo a still catalogued after Remove")
	}
	if err := st.Remove("nope"); err == nil {
		t.Error("expected error removing unknown logo")
	}
	if err := st.SetDefault("nope"); err == nil {
		t.Error("expected error defaulting unknown logo")
	}
}

func TestInstallRemoteRefusesHTTP(t *testing.T) {
	st, err := OpenAt(filepath.Join(t.TempDir(), "logos"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if _, err := st.InstallRemote("http://example.com/logo.png", ""); err == nil {
		t.Error("plain http should be refused")
	}
}

func TestInstallRemoteFileURL(t *testing.T) {
	src := writeFakeLogo(t, t.TempDir(), "local.png")
	st, err := OpenAt(filepath.Join(t.TempDir(), "logos"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if _, err := st.InstallRemote("file://"+src, "local"); err != nil {
		t.Fatalf("InstallRemote: %v", err)
	}
	if _, ok := st.Get("local"); !ok {
		t.Error("file:// logo not installed")
	}
}
