package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mosqueicon/generate"
	"mosqueicon/log"
)

func main() {
	log.Init(os.Stderr)
	base, err := programDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(base, os.Stdout, os.Stderr))
}

// run generates the icons below base and returns the process exit code.
func run(base string, stdout, stderr io.Writer) int {
	log.Init(stderr)
	defer log.Close()

	con := newConsole(stdout)
	if _, err := generate.Run(base, con); err != nil {
		log.Errorf("generate icons: %v", err)
		newConsole(stderr).Error(err)
		return 1
	}
	con.Done()
	return 0
}

// programDir is the directory holding the running binary. Binaries built by
// `go run` live in a throwaway go-build dir, so the working directory is used.
func programDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("find executable: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("resolve symlinks: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	return baseDir(filepath.Dir(execPath), wd), nil
}

func baseDir(execDir, wd string) string {
	for _, part := range strings.Split(filepath.ToSlash(execDir), "/") {
		if n, ok := strings.CutPrefix(part, "go-build"); ok && n != "" && strings.Trim(n, "0123456789") == "" {
			log.Warn("binary is in a go-build directory, writing below the working directory")
			return wd
		}
	}
	return execDir
}
