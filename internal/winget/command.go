// Package winget builds winget install command lines.
//
// The output is handed to the user verbatim, so the format is fixed:
//
//	winget install <id> [<id>...] --silent --accept-source-agreements --accept-package-agreements
package winget

import (
	"errors"
	"strings"
)

const (
	// Verb is the installer executable the command invokes.
	Verb = "winget"

	// Args are appended to every install command: no UI, and source and
	// package agreements accepted up front.
	Args = "--silent --accept-source-agreements --accept-package-agreements"
)

// ErrNoSelection is returned when a combined command is requested for an
// empty selection. Callers report it to the user as "no programs selected".
var ErrNoSelection = errors.New("no programs selected")

// SingleCommand returns the install command for one package identifier.
func SingleCommand(id string) string {
	return Verb + " install " + id + " " + Args
}

// MultiCommand returns one install command covering every identifier, in
// the order given. It returns ErrNoSelection if ids is empty.
func MultiCommand(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrNoSelection
	}
	return Verb + " install " + strings.Join(ids, " ") + " " + Args, nil
}

// Command picks the single form for one identifier and the combined form
// otherwise.
func Command(ids []string) (string, error) {
	if len(ids) == 1 {
		return SingleCommand(ids[0]), nil
	}
	return MultiCommand(ids)
}
