// Package generate writes the app icon assets rendered from the embedded mosque SVG.
package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"mosqueicon/icon"
	"mosqueicon/log"
)

// Target is one output file under the icons directory.
type Target struct {
	Name string
}

// Targets are written in order. Both hold the same render.
var Targets = []Target{
	{Name: "app_icon.png"},
	{Name: "app_icon_foreground.png"},
}

// Result lists the icons directory and the files written to it, in order.
type Result struct {
	Dir   string
	Files []string
}

// Reporter is told about each file once it is on disk.
type Reporter interface {
	Generated(name string)
}

// OutputDir is the icons directory below base.
func OutputDir(base string) string {
	return filepath.Join(base, "assets", "icons")
}

// Run renders the icon and writes every target below base. Existing files are
// always replaced, even when their content already matches.
func Run(base string, rep Reporter) (*Result, error) {
	start := time.Now()
	dir := OutputDir(base)
	log.RunStart(dir)

	_, statErr := os.Stat(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		log.Infof("created output directory %s", dir)
	}

	renderStart := time.Now()
	data, err := icon.Default()
	if err != nil {
		return nil, fmt.Errorf("render icon: %w", err)
	}
	log.Rendered(icon.Size, len(data), time.Since(renderStart))

	res := &Result{Dir: dir}
	for _, tg := range Targets {
		path := filepath.Join(dir, tg.Name)
		if err := WriteFile(path, data); err != nil {
			return res, err
		}
		log.Wrote(path, len(data))
		res.Files = append(res.Files, path)
		if rep != nil {
			rep.Generated(tg.Name)
		}
	}

	log.RunEnd(len(res.Files), time.Since(start))
	return res, nil
}

// WriteFile replaces path with data via a temp file in the same directory,
// so path never holds a partial image. The file is created 0644 under the umask.
func WriteFile(path string, data []byte) error {
	name := filepath.Base(path)
	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s-%d-%d", name, os.Getpid(), time.Now().UnixNano()))
	tmpFile, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
