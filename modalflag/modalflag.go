// This file is part of imsdl.
//
// imsdl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// imsdl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with imsdl.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"slices"
	"strings"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added
	// before the call to Parse() then Mode() will return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output writer
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	ParseError
)

// Modes holds the state of command line parsing. The Output field should be
// set before calling Parse() otherwise help messages will not be seen.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet

	// arguments not yet consumed by Parse()
	args []string

	// sub-modes that Parse() will look for. the first is the default
	subModes []string

	// modes selected so far
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts parsing of a new argument list.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode. Flags and
// sub-modes added previously are forgotten.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.additionalHelp = ""
}

// AddSubModes adds to the list of sub-modes recognised by the next call to
// Parse(). The first sub-mode added is the default. Sub-modes are case
// insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is text to show after the list of flags in help messages.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// Parse the flags of the current mode. If sub-modes have been added the first
// argument that is not a flag is checked against the list. If the argument is
// not a sub-mode, the default sub-mode is selected and the argument remains.
func (md *Modes) Parse() (ParseResult, error) {
	var usage strings.Builder
	md.flags.SetOutput(&usage)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			writeHelp(md.Output, usage.String(), md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		if len(md.args) > 0 {
			arg := strings.ToUpper(md.args[0])
			if slices.Contains(md.subModes, arg) {
				mode = arg
				md.args = md.args[1:]
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that were not consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
