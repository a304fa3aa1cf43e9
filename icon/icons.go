package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Book
	Cover
	Key
	Question
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "😵",
		nerd:    "\uf00d",
		plain:   "✖",
		kaomoji: "(×﹏×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf252",
		plain:   "…",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Book: {
		emoji:   "📖",
		nerd:    "\uf02d",
		plain:   "▪",
		kaomoji: "φ(．．)",
		squares: "🟦",
	},
	Cover: {
		emoji:   "🖼️",
		nerd:    "\uf03e",
		plain:   "#",
		kaomoji: "[◕‿◕]",
		squares: "🟪",
	},
	Key: {
		emoji:   "🔑",
		nerd:    "\uf084",
		plain:   "*",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟧",
	},
	Question: {
		emoji:   "🤨",
		nerd:    "\uf128",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟫",
	},
}
