package ui

// RenderPrompt styles the default prompt. A PS1 the user set themselves is
// never passed through here; it is written verbatim by the shell.
func RenderPrompt(prompt string) string {
	return PromptStyle.Render(prompt)
}
