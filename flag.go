package main

import (
	"fmt"
	"regexp"
	"strings"

	xstrings "github.com/charmbracelet/x/exp/strings"
	flag "github.com/spf13/pflag"
)

var (
	shorthandFlagRe = regexp.MustCompile(`unknown shorthand flag: '.*' in (-\w)`)
	invalidArgRe    = regexp.MustCompile(`invalid argument ".*" for "(.*)" flag: .*`)
)

// newFlagParseError explains err in terms of the flags relia defines.
func newFlagParseError(err error, flags *flag.FlagSet) flagParseError {
	var reason, name, hint string
	s := err.Error()
	switch {
	case strings.HasPrefix(s, "flag needs an argument:"):
		reason = "Flag %s needs an argument."
		name = s[strings.LastIndex(s, " ")+1:]
		var f *flag.Flag
		if long, ok := strings.CutPrefix(name, "--"); ok {
			f = flags.Lookup(long)
		} else if short := strings.TrimPrefix(name, "-"); len(short) == 1 {
			f = flags.ShorthandLookup(short)
		}
		if f != nil {
			hint = f.Usage
		}
	case strings.HasPrefix(s, "unknown flag:"):
		reason = "relia has no %s flag."
		name = strings.TrimPrefix(s, "unknown flag: ")
		if similar := similarFlags(flags, strings.TrimLeft(name, "-")); len(similar) > 0 {
			hint = fmt.Sprintf("Did you mean %s?", xstrings.EnglishJoin(similar, false))
		}
	case strings.HasPrefix(s, "unknown shorthand flag:"):
		reason = "Short flag %s is missing."
		if parts := shorthandFlagRe.FindStringSubmatch(s); len(parts) > 1 {
			name = parts[1]
		}
		var short []string
		flags.VisitAll(func(f *flag.Flag) {
			if f.Shorthand != "" && !f.Hidden {
				short = append(short, "-"+f.Shorthand)
			}
		})
		hint = "Short flags are " + xstrings.EnglishJoin(short, false) + "."
	case strings.HasPrefix(s, "invalid argument"):
		reason = "Flag %s have an invalid argument."
		if parts := invalidArgRe.FindStringSubmatch(s); len(parts) > 1 {
			name = parts[1]
		}
	default:
		reason = s
	}
	return flagParseError{
		err:    err,
		reason: reason,
		flag:   name,
		hint:   hint,
	}
}

// similarFlags returns the flags sharing the first word of name, or that
// name starts with.
func similarFlags(flags *flag.FlagSet, name string) []string {
	word, _, _ := strings.Cut(name, "-")
	var similar []string
	flags.VisitAll(func(f *flag.Flag) {
		if f.Hidden || word == "" {
			return
		}
		fword, _, _ := strings.Cut(f.Name, "-")
		if fword == word || strings.HasPrefix(name, f.Name) {
			similar = append(similar, "--"+f.Name)
		}
	})
	return similar
}

// flagParseError turns pflag's messages into a reason, the offending flag
// and, when relia can tell, a hint.
type flagParseError struct {
	err    error
	reason string
	flag   string
	hint   string
}

func (f flagParseError) Error() string {
	return f.err.Error()
}

func (f flagParseError) ReasonFormat() string {
	return f.reason
}

func (f flagParseError) Flag() string {
	return f.flag
}

func (f flagParseError) Hint() string {
	return f.hint
}
