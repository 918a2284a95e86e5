package desktop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// ErrNoCommand is returned by CommandArgs if the entry has no Exec key.
var ErrNoCommand = errors.New("no command")

// fieldCodes are the Exec placeholders a launcher expands with file names,
// URLs or entry metadata.
var fieldCodes = map[string]struct{}{
	"%f": {}, "%F": {}, "%u": {}, "%U": {},
	"%d": {}, "%D": {}, "%n": {}, "%N": {},
	"%i": {}, "%c": {}, "%k": {}, "%v": {}, "%m": {},
}

// CommandArgs splits the Exec value into an argument list.
// Standalone field codes are dropped and "%%" is unescaped.
func (d *Descriptor) CommandArgs() ([]string, error) {
	if d.Command == nil {
		return nil, ErrNoCommand
	}

	split, err := shlex.Split(*d.Command)
	if err != nil {
		return nil, fmt.Errorf("failed to split command %q: %w", *d.Command, err)
	}

	args := make([]string, 0, len(split))
	for _, arg := range split {
		if _, ok := fieldCodes[arg]; ok {
			continue
		}
		args = append(args, strings.ReplaceAll(arg, "%%", "%"))
	}
	if len(args) == 0 {
		return nil, ErrNoCommand
	}
	return args, nil
}
