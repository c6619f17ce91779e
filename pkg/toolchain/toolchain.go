// Package toolchain hands translated C source to the system C compiler.
package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnvCompiler names the environment variable that selects the C compiler
const EnvCompiler = "YDC_CC"

// ErrNoCompiler is returned when no C compiler can be located
var ErrNoCompiler = errors.New("no C compiler found (tried: cc, gcc, clang)")

// Options configures the compile step
type Options struct {
	Compiler  string   // compiler command or path; empty means FindCompiler("")
	ExtraArgs []string // passed before -o
}

// FindCompiler picks the C compiler: preferred if non-empty, then $YDC_CC,
// then the first of cc, gcc, clang found on PATH.
func FindCompiler(preferred string) (string, error) {
	if preferred == "" {
		preferred = os.Getenv(EnvCompiler)
	}
	if preferred != "" {
		path, err := exec.LookPath(preferred)
		if err != nil {
			return "", fmt.Errorf("C compiler %q: %w", preferred, err)
		}
		return path, nil
	}

	candidates := []string{"cc", "gcc", "clang"}
	for _, cmd := range candidates {
		if path, err := exec.LookPath(cmd); err == nil {
			return path, nil
		}
	}
	return "", ErrNoCompiler
}

// WriteSource writes translated C code to path
func WriteSource(path, code string) error {
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Compile builds the executable exe from the C file cFile
func Compile(cFile, exe string, opts *Options) error {
	var compiler string
	var extra []string
	if opts != nil {
		compiler = opts.Compiler
		extra = opts.ExtraArgs
	}

	ccPath, err := FindCompiler(compiler)
	if err != nil {
		return err
	}

	args := append([]string{}, extra...)
	args = append(args, "-o", exe, cFile)

	cmd := exec.Command(ccPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %v\n%s", filepath.Base(ccPath), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
