package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawLastPlayedBackground: true,
		Colors: ConfigColors{
			BoardColor:        19,
			EmptyColor:        250,
			PlayerAColor:      196,
			PlayerBColor:      226,
			CursorColorFG:     255,
			LastPlayedColorBG: 25,
			WinColorBG:        28,
		},
		Symbols: ConfigSymbols{
			PlayerADisc: '●',
			PlayerBDisc: '●',
			EmptyCell:   '·',
			Cursor:      '▼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Opponent: OpponentMinimax,
			Seed:     1,
		},
		LogLevel: "info",
	}
}
