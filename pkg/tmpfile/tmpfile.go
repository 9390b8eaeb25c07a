package tmpfile

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	// suffixLen random alphanumerics give log2(62^6) ≈ 35.7 bits of entropy
	// per attempt, the same name space as mkstemp's six X placeholders.
	suffixLen = 6

	// maxAttempts bounds the retry loop when generated names keep colliding.
	maxAttempts = 10000

	// defaultTmpDir is the last-resort temp location when neither the caller
	// nor the environment supplies one.
	defaultTmpDir = "/tmp"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TempFile is a freshly created temporary file. The caller owns both fields:
// it must close File and eventually remove or rename Path.
type TempFile struct {
	File *os.File
	Path string
}

// Create makes a new file named <dir>/<prefix>.<random suffix> with mode
// 0600 and the close-on-exec flag set. If dir is empty, $TMPDIR is used,
// then /tmp. The process umask is narrowed to 077 around the creation call
// and restored on every return path, which makes concurrent Create calls
// unsafe unless externally serialized.
//
// The file is placed where it can later be moved into its final location
// with a single rename, which is why the caller may pin the directory.
func Create(dir, prefix string) (*TempFile, error) {
	base := resolveDir(dir)

	mask := narrowMask()
	defer mask.restore()

	for i := 0; i < maxAttempts; i++ {
		suffix, err := randomSuffix()
		if err != nil {
			return nil, fmt.Errorf("tmpfile: generate suffix: %w", err)
		}
		path := base + "/" + prefix + "." + suffix

		fd, err := defaultCreator.createExclusive(path)
		if errors.Is(err, unix.EEXIST) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("tmpfile: create %s: %w", path, err)
		}
		return &TempFile{File: os.NewFile(uintptr(fd), path), Path: path}, nil
	}
	return nil, fmt.Errorf("tmpfile: gave up after %d name collisions in %s", maxAttempts, base)
}

// resolveDir picks the target directory: explicit argument, then the TMPDIR
// environment variable, then the platform default.
func resolveDir(dir string) string {
	if dir != "" {
		return dir
	}
	if env := os.Getenv("TMPDIR"); env != "" {
		return env
	}
	return defaultTmpDir
}

// randomSuffix returns suffixLen characters drawn from suffixAlphabet using
// the system CSPRNG, so names cannot be predicted by another local user.
func randomSuffix() (string, error) {
	b := make([]byte, suffixLen)
	if _, err := crand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b), nil
}
