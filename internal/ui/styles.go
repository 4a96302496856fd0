package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a blank line followed by a thin rule.
func Separator() {
	pterm.Println()
	pterm.FgGray.Println("────────────────────────────────────────")
}

// ApplyTheme picks section and table header colors for the dark mode setting.
func ApplyTheme(darkMode bool) {
	if darkMode {
		pterm.ThemeDefault.SectionStyle = *pterm.NewStyle(pterm.Bold, pterm.FgLightCyan)
		pterm.ThemeDefault.TableHeaderStyle = *pterm.NewStyle(pterm.FgLightCyan)
		return
	}
	pterm.ThemeDefault.SectionStyle = *pterm.NewStyle(pterm.Bold, pterm.FgYellow)
	pterm.ThemeDefault.TableHeaderStyle = *pterm.NewStyle(pterm.FgLightCyan)
}
