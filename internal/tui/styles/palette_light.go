package styles

// LightTheme is the palette for the light container class.
var LightTheme = Theme{
	Name: "light",
	Tokens: ThemeTokens{
		Background: "#EFEFEF",
		Text:       "#000000",
		TextMuted:  "#4B5563",
		Border:     "#9CA3AF",
		Accent:     "#1F4FD1",
		Focus:      "#000000",
	},
}
