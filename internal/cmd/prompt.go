package cmd

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter collects a value from the operator. Command logic depends on the
// interface so it can be tested without a real terminal.
type Prompter interface {
	// Input asks for a free-form value. Accepting the empty answer yields def.
	Input(message, def string) (string, error)

	// Suggest is Input with tab completion over options. Completion applies
	// to the last element of a comma separated answer.
	Suggest(message, def string, options []string) (string, error)
}

type surveyPrompter struct {
	io []survey.AskOpt
}

func (p *surveyPrompter) ask(prompt survey.Prompt) (string, error) {
	var answer string
	if err := survey.AskOne(prompt, &answer, p.io...); err != nil {
		return "", err
	}
	return answer, nil
}

func (p *surveyPrompter) Input(message, def string) (string, error) {
	return p.ask(&survey.Input{Message: message, Default: def})
}

func (p *surveyPrompter) Suggest(message, def string, options []string) (string, error) {
	return p.ask(&survey.Input{
		Message: message,
		Default: def,
		Suggest: completeList(options),
	})
}

// completeList builds a suggestion function that completes the last element
// of a comma separated list against options.
func completeList(options []string) func(string) []string {
	return func(toComplete string) []string {
		prefix, last := splitLast(toComplete)

		var matches []string
		for _, option := range options {
			if strings.HasPrefix(option, last) {
				matches = append(matches, prefix+option)
			}
		}
		return matches
	}
}

func splitLast(value string) (prefix, last string) {
	if i := strings.LastIndex(value, ","); i >= 0 {
		return value[:i+1], strings.TrimSpace(value[i+1:])
	}
	return "", value
}
