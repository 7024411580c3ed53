package main

import (
	"errors"
	"fmt"
	"os"
)

// reliaError is a wrapper around an error that adds a user facing reason.
type reliaError struct {
	err    error
	reason string
}

func (r reliaError) Error() string {
	return r.err.Error()
}

func (r reliaError) Reason() string {
	return r.reason
}

func (r reliaError) Unwrap() error {
	return r.err
}

func handleError(err error) {
	format := "\n%s\n\n"

	var args []any
	var ferr flagParseError
	var rerr reliaError
	if errors.As(err, &ferr) {
		format += "%s\n\n"
		args = []any{
			fmt.Sprintf(
				"Check out %s %s",
				stderrStyles().InlineCode.Render("relia -h"),
				stderrStyles().Comment.Render("for help."),
			),
			fmt.Sprintf(
				ferr.ReasonFormat(),
				stderrStyles().InlineCode.Render(ferr.Flag()),
			),
		}
		if hint := ferr.Hint(); hint != "" {
			format += "%s\n\n"
			args = append(args, stderrStyles().Comment.Render(hint))
		}
	} else if errors.As(err, &rerr) {
		args = []any{
			stderrStyles().ErrPadding.Render(stderrStyles().ErrorHeader.String(), rerr.reason),
		}
		if rerr.err != nil {
			format += "%s\n\n"
			args = append(args, stderrStyles().ErrPadding.Render(stderrStyles().ErrorDetails.Render(err.Error())))
		}
	} else {
		args = []any{
			stderrStyles().ErrPadding.Render(stderrStyles().ErrorDetails.Render(err.Error())),
		}
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
