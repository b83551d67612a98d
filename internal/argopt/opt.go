// Package argopt recognizes boolean command-line options described by strings
// like "h/help": an optional one-character short name, a slash, and a long
// name. Arguments spelled --help or -h match that option; other arguments
// are left for the caller.
package argopt

import (
	"errors"
	"strconv"
)

// State is whether an option was matched by a processing pass.
type State int8

const (
	// Unprocessed means no processing pass has seen the option yet.
	Unprocessed State = iota
	Matched
	NotMatched
)

func (s State) String() string {
	switch s {
	case Unprocessed:
		return "Unprocessed"
	case Matched:
		return "Matched"
	case NotMatched:
		return "NotMatched"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

var (
	// ErrNoLong indicates a descriptor with an empty long name.
	ErrNoLong = errors.New("no long name")
	// ErrShortTooLong indicates a descriptor with more than one character
	// before the slash.
	ErrShortTooLong = errors.New("short name is more than one character")
	// ErrBadChar indicates a descriptor containing a character which is not
	// an ASCII letter or digit.
	ErrBadChar = errors.New("not a letter or digit")
	// ErrUnprocessed indicates a query for whether an option matched before
	// any processing pass.
	ErrUnprocessed = errors.New("option has not been processed")
)

// DescriptorError is an invalid option descriptor.
type DescriptorError struct {
	// Desc is the descriptor.
	Desc string
	// Char is the offending character, if the error is ErrBadChar or
	// ErrShortTooLong.
	Char rune
	// Err is one of ErrNoLong, ErrShortTooLong, or ErrBadChar.
	Err error
}

func (err *DescriptorError) Error() string {
	msg := "argopt: invalid descriptor " + strconv.Quote(err.Desc) + ": " + err.Err.Error()
	if err.Char != 0 {
		msg += " at " + strconv.QuoteRune(err.Char)
	}
	return msg
}

func (err *DescriptorError) Unwrap() error {
	return err.Err
}

// Opt is a boolean option. The zero value is not a valid option.
type Opt struct {
	short rune
	long  string
	state State
}

// ParseOpt parses an option descriptor. Every slash in the descriptor ends
// the short name, so "h/help" and "/help" are valid and "a/b/c" has short
// name a and long name bc.
func ParseOpt(desc string) (Opt, error) {
	var o Opt
	var long []byte
	inShort := true
	for _, r := range desc {
		if r == '/' {
			inShort = false
			continue
		}
		if !isAlnum(r) {
			return Opt{}, &DescriptorError{Desc: desc, Char: r, Err: ErrBadChar}
		}
		if inShort {
			if o.short != 0 {
				return Opt{}, &DescriptorError{Desc: desc, Char: r, Err: ErrShortTooLong}
			}
			o.short = r
			continue
		}
		long = append(long, byte(r))
	}
	if len(long) == 0 {
		return Opt{}, &DescriptorError{Desc: desc, Err: ErrNoLong}
	}
	o.long = string(long)
	return o, nil
}

func isAlnum(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}

// Help returns the conventional h/help option.
func Help() Opt {
	return Opt{short: 'h', long: "help"}
}

// Short returns the short name of the option, or 0 if it has none.
func (o Opt) Short() rune {
	return o.short
}

// Long returns the long name of the option.
func (o Opt) Long() string {
	return o.long
}

// State returns whether the option has been matched.
func (o Opt) State() State {
	return o.state
}

// Matched returns whether a processing pass matched the option. The error is
// ErrUnprocessed if no pass has seen the option.
func (o Opt) Matched() (bool, error) {
	switch o.state {
	case Matched:
		return true, nil
	case NotMatched:
		return false, nil
	default:
		return false, ErrUnprocessed
	}
}

// String formats the option as its descriptor.
func (o Opt) String() string {
	if o.short == 0 {
		return "/" + o.long
	}
	return string(o.short) + "/" + o.long
}

// GoString formats the option for %#v.
func (o Opt) GoString() string {
	return "Opt(" + strconv.Quote(o.String()) + ")"
}
