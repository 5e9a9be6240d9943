package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var Green = color.New(color.FgGreen).SprintFunc()
var HiCyan = color.New(color.FgHiCyan).SprintFunc()
var Red = color.New(color.FgRed).SprintFunc()
var Bold = color.New(color.Bold).SprintFunc()
var Blue = color.New(color.FgBlue).SprintFunc()
var Grey = color.New(color.FgHiBlack).SprintFunc()
var Yellow = color.New(color.FgYellow).SprintFunc()
var HiYellow = color.New(color.FgHiYellow).SprintFunc()
var Italic = color.New(color.Italic).SprintFunc()
var Plus = color.New(color.FgHiWhite).SprintFunc()("+")
var SubItem = Grey("==>")

var Machine = Blue("machine")
var Descriptor = Blue("descriptor")
var Options = Grey("options")

var True = Green("true")
var False = Red("false")

// ConfigureColors applies the --color CLI flag. "auto" leaves the fatih
// tty detection alone.
func ConfigureColors(mode string) {
	switch mode {
	case "always", "on":
		color.NoColor = false
	case "never", "off":
		color.NoColor = true
	}
}

func Error(message string) {
	fmt.Println(Red(message))
	os.Exit(1)
}

func Success(message string, args ...interface{}) {
	fmt.Println(Green(fmt.Sprintf(message, args...)))
}

func Color(color string, message string) string {
	switch color {
	case "green":
		return Green(message)
	case "red":
		return Red(message)
	case "blue":
		return Blue(message)
	case "yellow":
		return Yellow(message)
	case "bold":
		return Bold(message)
	case "italic":
		return Italic(message)
	case "cyan":
		return HiCyan(message)
	case "grey":
		return Grey(message)
	case "hi-yellow":
		return HiYellow(message)
	default:
		return message
	}
}
