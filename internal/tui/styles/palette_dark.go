package styles

// DarkTheme is the palette for the dark container class.
var DarkTheme = Theme{
	Name: "dark",
	Tokens: ThemeTokens{
		Background: "#000000",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#5B8DEF",
		Accent:     "#7AA2F7",
		Focus:      "#FFFFFF",
	},
}
