package console

import "strings"

const bannerArt = `
 _    _                  _  _  _       _    _____               __  _
| |  | |                | || |(_)     | |  /  __ \             / _|| |
| |  | |  ___   _ __  __| || | _  ___ | |_ | /  \/ _ __  __ _ | |_ | |_
| |/\| | / _ \ | '__|/ _` + "`" + ` || || |/ __|| __|| |    | '__|/ _` + "`" + ` ||  _|| __|
\  /\  /| (_) || |  | (_| || || |\__ \| |_ | \__/\| |  | (_| || |  | |_
 \/  \/  \___/ |_|   \__,_||_||_||___/ \__| \____/|_|   \__,_||_|   \__|
`

// RenderBanner returns the styled ASCII banner followed by a one-line tagline.
func (t Theme) RenderBanner(version string) string {
	var b strings.Builder
	b.WriteString(t.Banner.Render(strings.TrimPrefix(bannerArt, "\n")))
	b.WriteString("\n")

	tagline := "WordlistCraft - custom wordlist generator"
	if version != "" {
		tagline += " " + version
	}
	b.WriteString(t.Subtitle.Render(tagline))
	b.WriteString("\n")
	return b.String()
}
