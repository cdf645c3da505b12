// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension -> tagging service -> store -> extended attributes.
//
// Internal packages are unit tested against the in-memory accessor. These
// tests prove the real binary reads and writes real attributes. They skip
// when the temp directory's filesystem does not support user extended
// attributes (tmpfs on older kernels, some container overlays).

package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/xattr"
	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the ftag binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "ftag-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "ftag"
		if os.PathSeparator == '\\' {
			binaryName = "ftag.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string
}

// newTestEnv creates a temporary working directory and home directory, so
// config and the audit log never touch the real ones.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	requireXattr(t, dir)

	binary := buildBinary(t)
	home := t.TempDir()

	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "FTAG_ATTR=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "HOME="+home)

	return &testEnv{t: t, dir: dir, home: home, binary: binary, env: env}
}

// requireXattr skips the test unless dir supports user extended attributes.
func requireXattr(t *testing.T, dir string) {
	t.Helper()
	probe := filepath.Join(dir, ".xattr-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		t.Fatalf("creating probe file: %v", err)
	}
	defer os.Remove(probe)
	if err := xattr.Set(probe, "user.ftag-probe", []byte("1")); err != nil {
		t.Skipf("user extended attributes not supported in %s: %v", dir, err)
	}
}

// file creates an empty file (and any parent directories) below the test dir.
func (e *testEnv) file(rel string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		e.t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, nil, 0644); err != nil {
		e.t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// attr returns the raw value of name on rel, or "" with ok=false if unset.
func (e *testEnv) attr(rel, name string) (string, bool) {
	e.t.Helper()
	v, err := xattr.Get(filepath.Join(e.dir, rel), name)
	if err != nil {
		return "", false
	}
	return string(v), true
}

// setAttr writes a raw attribute value, bypassing ftag.
func (e *testEnv) setAttr(rel, name string, value []byte) {
	e.t.Helper()
	if err := xattr.Set(filepath.Join(e.dir, rel), name, value); err != nil {
		e.t.Fatalf("xattr set %s: %v", rel, err)
	}
}

// run executes ftag with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("ftag %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes ftag and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runSplit executes ftag and returns stdout and stderr separately.
func (e *testEnv) runSplit(extraEnv []string, args ...string) (stdout, stderr string, err error) {
	e.t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(append([]string{}, e.env...), extraEnv...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// exitCode returns the process exit status carried by err.
func exitCode(err error) int {
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}
