package ui

import "github.com/AlecAivazis/survey/v2"

func PromptYesNo(text string) bool {
	// show a prompt to the user using survey
	// return true if the user says yes

	var result bool
	err := survey.AskOne(&survey.Confirm{
		Message: text,
	}, &result)
	if err != nil {
		panic(err)
	}
	return result
}

func PromptString(text string, defaultValue string) string {
	var result string
	err := survey.AskOne(&survey.Input{
		Message: text,
		Default: defaultValue,
	}, &result)
	if err != nil {
		panic(err)
	}
	return result
}

func PromptSelect(text string, options []string) string {
	var result string
	err := survey.AskOne(&survey.Select{
		Message: text,
		Options: options,
	}, &result)
	if err != nil {
		panic(err)
	}
	return result
}
