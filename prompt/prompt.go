// Package prompt collects interactive input from the terminal.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/conatus/literal-tools/auth"
	"github.com/conatus/literal-tools/filesystem"
	"github.com/conatus/literal-tools/icon"
	"github.com/conatus/literal-tools/literal"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when input is required but stdin is not a terminal.
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// Survey prompts through survey. The zero value is not usable; call New.
type Survey struct {
	interactive func() bool
	opts        []survey.AskOpt
}

// New returns a Survey reading from the process terminal.
func New() *Survey {
	return &Survey{
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		opts: []survey.AskOpt{
			survey.WithIcons(func(icons *survey.IconSet) {
				if q := icon.Get(icon.Question); q != "" {
					icons.Question.Text = q
				}
			}),
		},
	}
}

// Interactive reports whether the user can be prompted.
func (s *Survey) Interactive() bool {
	return s.interactive()
}

func (s *Survey) ensureInteractive(what string) error {
	if !s.interactive() {
		return fmt.Errorf("%w: cannot ask for %s", ErrNotInteractive, what)
	}
	return nil
}

// Credentials asks for an email address and a hidden password.
func (s *Survey) Credentials() (auth.Credentials, error) {
	if err := s.ensureInteractive("credentials"); err != nil {
		return auth.Credentials{}, err
	}

	fmt.Fprintln(os.Stderr, "Please login to Literal.club")

	answers := struct {
		Email    string
		Password string
	}{}

	err := survey.Ask([]*survey.Question{
		{
			Name:      "email",
			Prompt:    &survey.Input{Message: "Email:"},
			Validate:  survey.Required,
			Transform: survey.TransformString(strings.TrimSpace),
		},
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password:"},
			Validate: survey.Required,
		},
	}, &answers, s.opts...)
	if err != nil {
		return auth.Credentials{}, err
	}

	return auth.Credentials{Email: answers.Email, Password: answers.Password}, nil
}

// BookMetadata fills in the required fields missing from in.
// Fields already set are left untouched and not asked for.
func (s *Survey) BookMetadata(in *literal.BookInput) error {
	var questions []*survey.Question

	if strings.TrimSpace(in.Title) == "" {
		questions = append(questions, &survey.Question{
			Name:      "title",
			Prompt:    &survey.Input{Message: "Title:"},
			Validate:  survey.Required,
			Transform: survey.TransformString(strings.TrimSpace),
		})
	}

	if len(SplitAuthors(strings.Join(in.Authors, ","))) == 0 {
		questions = append(questions, &survey.Question{
			Name:     "authors",
			Prompt:   &survey.Input{Message: "Author(s):", Help: "Separate multiple authors with commas"},
			Validate: survey.Required,
		})
	}

	if len(questions) == 0 {
		return nil
	}

	if err := s.ensureInteractive("book metadata"); err != nil {
		return err
	}

	answers := struct {
		Title   string
		Authors string
	}{}

	if err := survey.Ask(questions, &answers, s.opts...); err != nil {
		return err
	}

	if answers.Title != "" {
		in.Title = answers.Title
	}
	if answers.Authors != "" {
		in.Authors = SplitAuthors(answers.Authors)
	}

	return nil
}

// CoverPath asks whether to attach a cover image and, if so, for its path.
func (s *Survey) CoverPath() (mo.Option[string], error) {
	if err := s.ensureInteractive("a cover image"); err != nil {
		return mo.None[string](), err
	}

	var attach bool
	if err := survey.AskOne(&survey.Confirm{Message: "Add a cover image?", Default: false}, &attach, s.opts...); err != nil {
		return mo.None[string](), err
	}

	if !attach {
		return mo.None[string](), nil
	}

	var path string
	err := survey.AskOne(&survey.Input{
		Message: "Cover image path:",
		Suggest: suggestPaths,
	}, &path, append(s.opts, survey.WithValidator(survey.Required), survey.WithValidator(validateCover))...)
	if err != nil {
		return mo.None[string](), err
	}

	return mo.Some(ExpandHome(strings.TrimSpace(path))), nil
}

// SplitAuthors splits a comma separated list of author names.
func SplitAuthors(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(a string, _ int) string {
		return strings.TrimSpace(a)
	}))
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func validateCover(ans interface{}) error {
	path, ok := ans.(string)
	if !ok {
		return errors.New("expected a path")
	}
	return literal.CheckCover(ExpandHome(strings.TrimSpace(path)))
}

func suggestPaths(toComplete string) []string {
	matches, _ := afero.Glob(filesystem.API(), ExpandHome(toComplete)+"*")
	return matches
}
