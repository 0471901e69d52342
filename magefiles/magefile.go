//go:build mage

// Package main contains Mage build targets for omnisearch developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "omnisearch"
	cmdPkg  = "./cmd/omnisearch"
	dataDir = ".omnisearch"
)

// Default target when mage runs without arguments.
var Default = Build

// version returns the version stamped into the binary: the VERSION
// environment variable, else "dev".
func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Install installs the CLI into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", "-X main.version="+version(), cmdPkg)
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests with the race detector.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Serve builds the binary and runs the JSON API against an in-memory store.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve", "--ephemeral")
}

// Clean removes build output and the local development database directory.
func Clean() error {
	for _, dir := range []string{binDir, dataDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints the number of Go packages, source files and test functions.
func Stats() error {
	pkgs := map[string]bool{}
	var files, testFiles, tests int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		pkgs[filepath.Dir(path)] = true
		if !strings.HasSuffix(path, "_test.go") {
			files++
			return nil
		}
		testFiles++
		n, err := countTests(path)
		tests += n
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("Packages:       %d\n", len(pkgs))
	fmt.Printf("Source files:   %d\n", files)
	fmt.Printf("Test files:     %d\n", testFiles)
	fmt.Printf("Test functions: %d\n", tests)
	return nil
}

// countTests counts top-level Test functions in a test file.
func countTests(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), "func Test") {
			n++
		}
	}
	return n, sc.Err()
}
