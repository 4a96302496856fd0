package ui

import "github.com/AlecAivazis/survey/v2"

// surveyOpts sets the question icon to "-" for every survey prompt.
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

// ConfirmDestructive asks before an irreversible change. The default answer is no.
func ConfirmDestructive(message string) (bool, error) {
	var confirmation bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmation, surveyOpts...); err != nil {
		return false, err
	}
	return confirmation, nil
}
