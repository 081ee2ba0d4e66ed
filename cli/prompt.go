// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Prompter asks the user for values the flags and config left out.
type Prompter interface {
	Interactive() bool
	AskInt(message string, validate func(int) error) (int, error)
}

type surveyPrompter struct {
	in  *os.File
	out *os.File
	err io.Writer
}

func newSurveyPrompter(in, out *os.File, errOut io.Writer) *surveyPrompter {
	return &surveyPrompter{in: in, out: out, err: errOut}
}

func (p *surveyPrompter) Interactive() bool {
	return checkIfTerminal(p.in)
}

func (p *surveyPrompter) AskInt(message string, validate func(int) error) (int, error) {
	var answer string
	in := &survey.Input{Message: message}
	err := survey.AskOne(in, &answer,
		survey.WithStdio(p.in, p.out, p.err),
		survey.WithValidator(func(ans interface{}) error {
			n, err := parseInt(ans)
			if err != nil {
				return err
			}
			return validate(n)
		}))
	if err != nil {
		return 0, err
	}

	return parseInt(answer)
}

func parseInt(ans interface{}) (int, error) {
	s, _ := ans.(string)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Errorf("%q is not an integer", s)
	}

	return n, nil
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}
