package tmpfile

import (
	"errors"
	"os"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

// --------------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------------

// cloexecSet reports whether fd carries the close-on-exec flag.
func cloexecSet(t *testing.T, fd int) bool {
	t.Helper()
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err != nil {
		t.Fatalf("F_GETFD on fd %d: %v", fd, err)
	}
	return flags&unix.FD_CLOEXEC != 0
}

// currentUmask reads the process umask without changing it for good.
func currentUmask() int {
	m := unix.Umask(0)
	unix.Umask(m)
	return m
}

// --------------------------------------------------------------------------
// Create
// --------------------------------------------------------------------------

func TestCreate(t *testing.T) {
	t.Run("returns open file and matching path", func(t *testing.T) {
		dir := t.TempDir()
		tf, err := Create(dir, "fdkit-test")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		defer tf.File.Close()
		defer os.Remove(tf.Path)

		if !strings.HasPrefix(tf.Path, dir+"/fdkit-test.") {
			t.Errorf("Path = %q, want prefix %q", tf.Path, dir+"/fdkit-test.")
		}
		if tf.File.Name() != tf.Path {
			t.Errorf("File.Name() = %q, want %q", tf.File.Name(), tf.Path)
		}
		if _, err := os.Stat(tf.Path); err != nil {
			t.Errorf("stat %s: %v", tf.Path, err)
		}
	})

	t.Run("permissions are owner read/write only", func(t *testing.T) {
		tf, err := Create(t.TempDir(), "perm")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		defer tf.File.Close()
		defer os.Remove(tf.Path)

		var st unix.Stat_t
		if err := unix.Fstat(int(tf.File.Fd()), &st); err != nil {
			t.Fatalf("fstat: %v", err)
		}
		if perm := st.Mode & 0o777; perm != 0o600 {
			t.Errorf("mode = %04o, want 0600", perm)
		}
	})

	t.Run("descriptor is close-on-exec", func(t *testing.T) {
		tf, err := Create(t.TempDir(), "cloexec")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		defer tf.File.Close()
		defer os.Remove(tf.Path)

		if !cloexecSet(t, int(tf.File.Fd())) {
			t.Error("FD_CLOEXEC not set on created descriptor")
		}
	})

	t.Run("repeated creation yields distinct paths", func(t *testing.T) {
		dir := t.TempDir()
		seen := make(map[string]bool)
		for i := 0; i < 32; i++ {
			tf, err := Create(dir, "dup")
			if err != nil {
				t.Fatalf("Create #%d: %v", i, err)
			}
			if seen[tf.Path] {
				t.Fatalf("path %q produced twice", tf.Path)
			}
			seen[tf.Path] = true
			tf.File.Close()
		}
	})

	t.Run("umask restored on success", func(t *testing.T) {
		old := unix.Umask(0o022)
		defer unix.Umask(old)

		tf, err := Create(t.TempDir(), "mask")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		tf.File.Close()
		os.Remove(tf.Path)

		if got := currentUmask(); got != 0o022 {
			t.Errorf("umask after Create = %04o, want 0022", got)
		}
	})

	t.Run("umask restored on failure", func(t *testing.T) {
		old := unix.Umask(0o022)
		defer unix.Umask(old)

		if _, err := Create(t.TempDir()+"/missing", "mask"); err == nil {
			t.Fatal("Create in missing directory succeeded, want error")
		}
		if got := currentUmask(); got != 0o022 {
			t.Errorf("umask after failed Create = %04o, want 0022", got)
		}
	})

	t.Run("falls back to TMPDIR", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TMPDIR", dir)

		tf, err := Create("", "env")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		defer tf.File.Close()
		defer os.Remove(tf.Path)

		if !strings.HasPrefix(tf.Path, dir+"/") {
			t.Errorf("Path = %q, want inside %q", tf.Path, dir)
		}
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		if _, err := Create(t.TempDir()+"/nope", "x"); err == nil {
			t.Fatal("want error for missing directory")
		}
	})
}

func TestResolveDir(t *testing.T) {
	t.Run("explicit directory wins over environment", func(t *testing.T) {
		t.Setenv("TMPDIR", "/elsewhere")
		if got := resolveDir("/explicit"); got != "/explicit" {
			t.Errorf("resolveDir = %q, want /explicit", got)
		}
	})

	t.Run("default when nothing is set", func(t *testing.T) {
		t.Setenv("TMPDIR", "")
		if got := resolveDir(""); got != defaultTmpDir {
			t.Errorf("resolveDir = %q, want %q", got, defaultTmpDir)
		}
	})
}

// --------------------------------------------------------------------------
// portable creator unwind
// --------------------------------------------------------------------------

func TestPortableCreator(t *testing.T) {
	t.Run("creates and marks close-on-exec", func(t *testing.T) {
		path := t.TempDir() + "/portable.000000"
		fd, err := portableCreator{}.createExclusive(path)
		if err != nil {
			t.Fatalf("createExclusive: %v", err)
		}
		defer unix.Close(fd)
		defer os.Remove(path)

		if !cloexecSet(t, fd) {
			t.Error("FD_CLOEXEC not set")
		}
	})

	t.Run("refuses to reuse an existing file", func(t *testing.T) {
		path := t.TempDir() + "/exists"
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := (portableCreator{}).createExclusive(path); !errors.Is(err, unix.EEXIST) {
			t.Fatalf("err = %v, want EEXIST", err)
		}
	})

	t.Run("marking failure leaves no file behind", func(t *testing.T) {
		orig := setCloexec
		setCloexec = func(int) error { return unix.EPERM }
		defer func() { setCloexec = orig }()

		path := t.TempDir() + "/unwind.000000"
		if _, err := (portableCreator{}).createExclusive(path); !errors.Is(err, unix.EPERM) {
			t.Fatalf("err = %v, want EPERM", err)
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("stat after unwind = %v, want not-exist", err)
		}
	})

	t.Run("Create never orphans a file when marking fails", func(t *testing.T) {
		origCreator := defaultCreator
		origMark := setCloexec
		defaultCreator = portableCreator{}
		setCloexec = func(int) error { return unix.EPERM }
		defer func() {
			defaultCreator = origCreator
			setCloexec = origMark
		}()

		dir := t.TempDir()
		if _, err := Create(dir, "orphan"); err == nil {
			t.Fatal("Create succeeded, want marking failure")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("directory not empty after failed Create: %v", entries)
		}
	})
}

func TestRandomSuffix(t *testing.T) {
	t.Run("length and alphabet", func(t *testing.T) {
		s, err := randomSuffix()
		if err != nil {
			t.Fatalf("randomSuffix: %v", err)
		}
		if len(s) != suffixLen {
			t.Errorf("len = %d, want %d", len(s), suffixLen)
		}
		for _, c := range s {
			if !strings.ContainsRune(suffixAlphabet, c) {
				t.Errorf("suffix %q contains %q outside the alphabet", s, c)
			}
		}
	})
}
