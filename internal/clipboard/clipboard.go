// Package clipboard copies generated commands to the user's clipboard.
//
// Two mechanisms are available: the platform clipboard tool (clip.exe,
// pbcopy, wl-copy or xclip) and the OSC 52 terminal escape sequence, which
// works over SSH when the terminal emulator supports it.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard mechanism could take the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// Write calls f(text).
func (f WriterFunc) Write(text string) error {
	return f(text)
}

// Method names accepted by New.
const (
	MethodAuto   = "auto"
	MethodSystem = "system"
	MethodOSC52  = "osc52"
	MethodNone   = "none"
)

// New returns the Writer for a configured method name.
// "auto" tries the system tool first and falls back to OSC 52.
func New(method string) (Writer, error) {
	switch strings.ToLower(method) {
	case "", MethodAuto:
		return Fallback(NewSystem(), NewOSC52(os.Stderr)), nil
	case MethodSystem:
		return NewSystem(), nil
	case MethodOSC52:
		return NewOSC52(os.Stderr), nil
	case MethodNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard method %q (want auto, system, osc52 or none)", method)
	}
}

// System writes through the platform clipboard command.
type System struct {
	goos   string
	getenv func(string) string
	look   func(string) (string, error)
	run    func(name string, args []string, stdin string) error
}

// NewSystem returns a System writer for the running platform.
func NewSystem() *System {
	return &System{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		look:   exec.LookPath,
		run:    runCommand,
	}
}

// Write pipes text to the platform clipboard command.
func (s *System) Write(text string) error {
	name, args := clipboardCmd(s.goos, s.getenv)
	if name == "" {
		return fmt.Errorf("no clipboard command for %s: %w", s.goos, ErrUnavailable)
	}
	if _, err := s.look(name); err != nil {
		return fmt.Errorf("%s not found: %w", name, ErrUnavailable)
	}
	if err := s.run(name, args, text); err != nil {
		return fmt.Errorf("%s failed: %v: %w", name, err, ErrUnavailable)
	}
	return nil
}

// clipboardCmd returns the clipboard command and arguments for goos.
func clipboardCmd(goos string, getenv func(string) string) (string, []string) {
	switch goos {
	case "windows":
		return "clip.exe", nil
	case "darwin":
		return "pbcopy", nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil
		}
		return "xclip", []string{"-selection", "clipboard"}
	default:
		return "", nil
	}
}

func runCommand(name string, args []string, stdin string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w (output: %s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// OSC52 writes the OSC 52 escape sequence to a terminal.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 returns an OSC52 writer that emits to out, typically the
// controlling terminal.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, getenv: os.Getenv}
}

// Write emits the sequence, wrapped for tmux or screen when running inside one.
func (o *OSC52) Write(text string) error {
	if o.out == nil {
		return fmt.Errorf("no terminal for OSC 52: %w", ErrUnavailable)
	}

	seq := osc52.New(text)
	switch {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(o.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("write OSC 52 sequence: %v: %w", err, ErrUnavailable)
	}
	return nil
}

type fallback []Writer

// Fallback returns a Writer that tries each writer in turn and succeeds on
// the first one that does. If all fail, the errors are joined.
func Fallback(writers ...Writer) Writer {
	return fallback(writers)
}

func (f fallback) Write(text string) error {
	var errs []error
	for _, w := range f {
		err := w.Write(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Join(errs...)
}

// Nop discards text and reports ErrUnavailable, used when copying is
// disabled so the caller still shows the command inline.
type Nop struct{}

// Write always fails with ErrUnavailable.
func (Nop) Write(string) error {
	return fmt.Errorf("clipboard disabled: %w", ErrUnavailable)
}
