// Package prompt collects field decoration options interactively.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig asks for one of Options. DefaultIndex outside the range
// leaves the cursor on the first option.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver is the terminal seam used by AskField; tests script the answers.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// NewSurveyDriver returns a Driver backed by survey/v2. opts apply to every
// question, e.g. survey.WithStdio for a non-default terminal.
func NewSurveyDriver(opts ...survey.AskOpt) Driver {
	return surveyDriver(opts)
}

type surveyDriver []survey.AskOpt

func (d surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	opts := d
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(append(surveyDriver(nil), d...), survey.WithValidator(func(ans any) error {
			value, _ := ans.(string)
			return validate(value)
		}))
	}
	return ask[string](ctx, &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, opts)
}

func (d surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	return ask[bool](ctx, &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, d)
}

func (d surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	question := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.PageSize > 0 {
		question.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		question.Default = cfg.DefaultIndex
	}
	return ask[int](ctx, question, d)
}

// ask runs one survey question. Select questions answered into an int
// receive the chosen index.
func ask[T any](ctx context.Context, question survey.Prompt, opts []survey.AskOpt) (T, error) {
	var answer T
	if err := ctx.Err(); err != nil {
		return answer, err
	}
	if err := survey.AskOne(question, &answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return answer, ErrAborted
		}
		return answer, err
	}
	return answer, nil
}
