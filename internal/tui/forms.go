package tui

import "github.com/charmbracelet/huh"

type LoginFormModel struct {
	Email    string
	Password string
}

type ComposeFormModel struct {
	Text string
	Mood string
}

func newLoginForm(lf *LoginFormModel) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Value(&lf.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&lf.Password),
	))
}

func newComposeForm(cf *ComposeFormModel) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("How are you feeling today?").
			Placeholder("Write freely; this stays between you and your journal.").
			Value(&cf.Text),
		huh.NewSelect[string]().
			Title("Mood score").
			Options(
				huh.NewOption("skip", "0"),
				huh.NewOption("1 — very sad", "1"),
				huh.NewOption("2 — sad", "2"),
				huh.NewOption("3 — neutral", "3"),
				huh.NewOption("4 — happy", "4"),
				huh.NewOption("5 — very happy", "5"),
			).
			Value(&cf.Mood),
	))
}
