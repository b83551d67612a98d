package argopt

import (
	"sort"
	"strconv"
	"strings"
)

// DuplicateError indicates an attempt to add an option whose long name is
// already in use.
type DuplicateError struct {
	// Have is the option already in the processor.
	Have Opt
	// New is the option that was rejected.
	New Opt
}

func (err *DuplicateError) Error() string {
	return "argopt: " + strconv.Quote(err.Have.String()) + " and " + strconv.Quote(err.New.String()) + " have the same long name"
}

// UnknownOptError indicates a lookup of a long name that no option has.
type UnknownOptError struct {
	Long string
}

func (err *UnknownOptError) Error() string {
	return "argopt: no option with long name " + strconv.Quote(err.Long)
}

// Processor holds a set of options with distinct long names and matches them
// against arguments. It is not safe to use a Processor concurrently.
type Processor struct {
	opts map[string]*Opt
}

// New creates a processor with the given options.
func New(opts ...Opt) (*Processor, error) {
	p := Processor{opts: make(map[string]*Opt, len(opts))}
	for _, o := range opts {
		if err := p.Add(o); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// NewFromStrings creates a processor with options parsed from descriptors.
func NewFromStrings(descs ...string) (*Processor, error) {
	opts := make([]Opt, 0, len(descs))
	for _, d := range descs {
		o, err := ParseOpt(d)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return New(opts...)
}

// Add adds an option. The error is a *DuplicateError if another option
// already has the same long name, in which case p is unchanged.
func (p *Processor) Add(o Opt) error {
	if o.long == "" {
		return &DescriptorError{Desc: o.String(), Err: ErrNoLong}
	}
	if have := p.opts[o.long]; have != nil {
		return &DuplicateError{Have: *have, New: o}
	}
	if p.opts == nil {
		p.opts = make(map[string]*Opt)
	}
	p.opts[o.long] = &o
	return nil
}

// AddString parses a descriptor and adds the option.
func (p *Processor) AddString(desc string) error {
	o, err := ParseOpt(desc)
	if err != nil {
		return err
	}
	return p.Add(o)
}

// Opt returns a copy of the option with the given long name.
func (p *Processor) Opt(long string) (Opt, error) {
	o := p.opts[long]
	if o == nil {
		return Opt{}, &UnknownOptError{Long: long}
	}
	return *o, nil
}

// Opts returns copies of all options, sorted by long name.
func (p *Processor) Opts() []Opt {
	r := make([]Opt, 0, len(p.opts))
	for _, o := range p.opts {
		r = append(r, *o)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].long < r[j].long })
	return r
}

// Process matches args against the options. An argument --name matches the
// option with long name name, and -c matches the option with short name c.
// Arguments which do not begin with - are returned in order. Arguments which
// begin with - but match no option are discarded.
//
// After Process, every option is either Matched or NotMatched. An option
// matched by an earlier pass remains Matched.
func (p *Processor) Process(args []string) []string {
	var rest []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--"):
			if o := p.opts[arg[2:]]; o != nil {
				o.state = Matched
			}
		case strings.HasPrefix(arg, "-"):
			if o := p.byShort(arg[1:]); o != nil {
				o.state = Matched
			}
		default:
			rest = append(rest, arg)
		}
	}
	for _, o := range p.opts {
		if o.state == Unprocessed {
			o.state = NotMatched
		}
	}
	return rest
}

// byShort finds the option whose short name is exactly s. If several options
// share the short name, the one with the least long name wins.
func (p *Processor) byShort(s string) *Opt {
	var r *Opt
	for _, o := range p.opts {
		if o.short == 0 || string(o.short) != s {
			continue
		}
		if r == nil || o.long < r.long {
			r = o
		}
	}
	return r
}

// String lists the options of the processor.
func (p *Processor) String() string {
	opts := p.Opts()
	v := make([]string, len(opts))
	for i, o := range opts {
		v[i] = o.String()
	}
	return "Processor(" + strings.Join(v, ", ") + ")"
}
