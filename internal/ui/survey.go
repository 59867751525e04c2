package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption sets the survey question icon to "-" to match the huh prompts.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
		icons.Error.Text = "x"
	})
}

// ConfirmDestructive asks a yes/no question that defaults to no.
func ConfirmDestructive(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed, IconOption()); err != nil {
		return false, err
	}
	return confirmed, nil
}
