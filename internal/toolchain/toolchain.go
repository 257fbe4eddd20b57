// Package toolchain invokes a host C++ compiler against generated
// source and, optionally, runs the resulting binary. This is the
// subprocess-management concern surrounding the compiler's
// algorithmic core, kept separate so compiler and cmd/stackc stay
// free of os/exec details.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jhallock/stackc/internal/config"
)

// BuildCXX writes src to "<base name of output>.cpp" under
// cfg.Output.Dir (or "." when that is empty), invokes the configured
// C++ compiler to build output joined under the same directory, and
// returns the path to the built executable.
//
// This writes a real .cpp file rather than piping source on the
// compiler's stdin: a C++ translation unit with labels and gotos
// needs an on-disk path a compiler can diagnose against.
func BuildCXX(cfg config.Config, src string, output string) (string, error) {
	dir := cfg.Output.Dir
	if dir == "" {
		dir = "."
	}

	cppPath := filepath.Join(dir, filepath.Base(output)+".cpp")
	if err := os.WriteFile(cppPath, []byte(src), 0o644); err != nil {
		return "", errors.Wrapf(err, "toolchain: writing %q", cppPath)
	}
	if !cfg.Output.KeepCPP {
		defer os.Remove(cppPath)
	}

	outPath := filepath.Join(dir, output)

	args := []string{"-std=" + cfg.Toolchain.Std, "-o", outPath, cppPath}
	args = append(args, cfg.Toolchain.ExtraFlags...)

	cxx := cfg.Toolchain.CXX
	if cxx == "" {
		cxx = "g++"
	}

	cmd := exec.Command(cxx, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "toolchain: %s failed", cxx)
	}

	return outPath, nil
}

// RunBinary runs path with stdio inherited from the current process.
func RunBinary(path string) error {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = "./" + abs
	}
	cmd := exec.Command(abs)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "toolchain: running %q", path)
	}
	return nil
}
