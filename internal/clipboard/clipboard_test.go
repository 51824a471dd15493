package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestClipboardCmd(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		env      map[string]string
		wantCmd  string
		wantArgs string
	}{
		{name: "windows", goos: "windows", wantCmd: "clip.exe"},
		{name: "darwin", goos: "darwin", wantCmd: "pbcopy"},
		{name: "linux x11", goos: "linux", wantCmd: "xclip", wantArgs: "-selection clipboard"},
		{name: "linux wayland", goos: "linux", env: map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, wantCmd: "wl-copy"},
		{name: "unsupported", goos: "plan9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := clipboardCmd(tt.goos, envMap(tt.env))
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %q, want %q", cmd, tt.wantCmd)
			}
			if got := strings.Join(args, " "); got != tt.wantArgs {
				t.Errorf("args = %q, want %q", got, tt.wantArgs)
			}
		})
	}
}

func TestSystemWrite(t *testing.T) {
	var gotName, gotStdin string
	s := &System{
		goos:   "darwin",
		getenv: envMap(nil),
		look:   func(name string) (string, error) { return "/usr/bin/" + name, nil },
		run: func(name string, args []string, stdin string) error {
			gotName, gotStdin = name, stdin
			return nil
		},
	}

	if err := s.Write("winget install Git.Git"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if gotName != "pbcopy" || gotStdin != "winget install Git.Git" {
		t.Errorf("ran %q with stdin %q", gotName, gotStdin)
	}
}

func TestSystemWrite_MissingTool(t *testing.T) {
	s := &System{
		goos:   "linux",
		getenv: envMap(nil),
		look:   func(string) (string, error) { return "", errors.New("not found") },
		run: func(string, []string, string) error {
			t.Fatal("run should not be called when the tool is missing")
			return nil
		},
	}

	err := s.Write("x")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Write() error = %v, want ErrUnavailable", err)
	}
}

func TestSystemWrite_CommandFails(t *testing.T) {
	s := &System{
		goos:   "windows",
		getenv: envMap(nil),
		look:   func(name string) (string, error) { return name, nil },
		run:    func(string, []string, string) error { return errors.New("exit status 1") },
	}

	if err := s.Write("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Write() error = %v, want ErrUnavailable", err)
	}
}

func TestOSC52Write(t *testing.T) {
	var buf bytes.Buffer
	o := &OSC52{out: &buf, getenv: envMap(nil)}

	if err := o.Write("winget install 7zip.7zip"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	encoded := base64.StdEncoding.EncodeToString([]byte("winget install 7zip.7zip"))
	if !strings.Contains(buf.String(), encoded) {
		t.Errorf("output %q does not contain base64 payload %q", buf.String(), encoded)
	}
	if !strings.HasPrefix(buf.String(), "\x1b]52;") {
		t.Errorf("output %q is not an OSC 52 sequence", buf.String())
	}
}

func TestOSC52Write_Tmux(t *testing.T) {
	var buf bytes.Buffer
	o := &OSC52{out: &buf, getenv: envMap(map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"})}

	if err := o.Write("x"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("output %q is not wrapped for tmux", buf.String())
	}
}

func TestFallback(t *testing.T) {
	failing := WriterFunc(func(string) error { return ErrUnavailable })
	var got string
	ok := WriterFunc(func(s string) error { got = s; return nil })

	if err := Fallback(failing, ok).Write("cmd"); err != nil {
		t.Fatalf("Fallback() error = %v", err)
	}
	if got != "cmd" {
		t.Errorf("second writer got %q, want %q", got, "cmd")
	}

	err := Fallback(failing, failing).Write("cmd")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Fallback(all failing) error = %v, want ErrUnavailable", err)
	}

	if err := Fallback().Write("cmd"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Fallback() with no writers error = %v, want ErrUnavailable", err)
	}
}

func TestNew(t *testing.T) {
	for _, method := range []string{"", "auto", "system", "osc52", "none", "SYSTEM"} {
		if _, err := New(method); err != nil {
			t.Errorf("New(%q) error = %v", method, err)
		}
	}
	if _, err := New("carrier-pigeon"); err == nil {
		t.Error("New(carrier-pigeon) expected error")
	}
}

func TestNop(t *testing.T) {
	if err := (Nop{}).Write("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Nop.Write() error = %v, want ErrUnavailable", err)
	}
}
