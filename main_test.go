package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mosqueicon/generate"
	"mosqueicon/log"
)

func TestRunSuccess(t *testing.T) {
	base := t.TempDir()
	var stdout, stderr bytes.Buffer

	if code := run(base, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	for _, tg := range generate.Targets {
		path := filepath.Join(base, "assets", "icons", tg.Name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not created: %v", tg.Name, err)
		}
	}

	out := stdout.String()
	for _, want := range []string{
		"app_icon.png generated",
		"app_icon_foreground.png generated",
		"Icons generated successfully!",
		"Now run: flutter pub get && dart run flutter_launcher_icons",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q, got: %q", want, out)
		}
	}
	if strings.Index(out, "app_icon.png generated") > strings.Index(out, "app_icon_foreground.png generated") {
		t.Errorf("icons reported out of order: %q", out)
	}
	if !strings.Contains(stderr.String(), "run_end") {
		t.Errorf("stderr missing run_end diagnostics, got: %q", stderr.String())
	}
}

func TestRunFailure(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "assets"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer

	if code := run(base, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if strings.Contains(stdout.String(), "successfully") {
		t.Errorf("stdout claims success: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Error: create output directory") {
		t.Errorf("stderr missing error, got: %q", stderr.String())
	}
}

func TestBaseDir(t *testing.T) {
	tests := []struct {
		execDir  string
		wd       string
		want     string
		wantWarn bool
	}{
		{"/opt/app", "/home/me", "/opt/app", false},
		{"/tmp/go-build123456/b001/exe", "/home/me/project", "/home/me/project", true},
		{"/home/me/go-builder/bin", "/home/me", "/home/me/go-builder/bin", false},
	}

	var buf bytes.Buffer
	log.Init(&buf)
	t.Cleanup(log.Close)

	for _, tt := range tests {
		buf.Reset()
		got := baseDir(tt.execDir, tt.wd)
		if got != tt.want {
			t.Errorf("baseDir(%q, %q) = %q, want %q", tt.execDir, tt.wd, got, tt.want)
		}
		warned := strings.Contains(buf.String(), "WRN")
		if warned != tt.wantWarn {
			t.Errorf("baseDir(%q, %q) warned = %v, want %v (log: %q)", tt.execDir, tt.wd, warned, tt.wantWarn, buf.String())
		}
	}
}

func TestProgramDir(t *testing.T) {
	dir, err := programDir()
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("programDir() = %q, want absolute path", dir)
	}
}
