package generator

var stickerSets = map[Tone][]string{
	ToneHeartfelt: {"❤️", "🥰", "💕", "🤗", "✨"},
	ToneFunny:     {"😂", "🤣", "😄", "🎉", "🤪"},
	ToneEmotional: {"😭", "💔", "🥺", "😢", "💙"},
	ToneFormal:    {"🎩", "👔", "📋", "🏆", "💼"},
	ToneRomantic:  {"💕", "💖", "🌹", "💐", "😍"},
	ToneReligious: {"🙏", "✝️", "🕊️", "⭐", "🌟"},
	ToneChildlike: {"🎈", "🎨", "🧸", "🌈", "🦄"},
}

var visualStyles = map[Tone]VisualStyle{
	ToneHeartfelt: {FontFamily: "serif", BackgroundColor: "from-pink-50 to-rose-50", TextColor: "text-rose-800", BorderColor: "border-rose-200"},
	ToneFunny:     {FontFamily: "sans-serif", BackgroundColor: "from-yellow-50 to-orange-50", TextColor: "text-orange-800", BorderColor: "border-orange-200"},
	ToneFormal:    {FontFamily: "serif", BackgroundColor: "from-blue-50 to-indigo-50", TextColor: "text-indigo-800", BorderColor: "border-indigo-200"},
	ToneRomantic:  {FontFamily: "cursive", BackgroundColor: "from-pink-50 to-purple-50", TextColor: "text-purple-800", BorderColor: "border-purple-200"},
}

// StickersFor returns a copy of the tone's sticker set; unknown tones get heartfelt.
func StickersFor(t Tone) []string {
	set, ok := stickerSets[t]
	if !ok {
		set = stickerSets[ToneHeartfelt]
	}
	return append([]string(nil), set...)
}

// VisualStyleFor returns the tone's card style; unknown tones get heartfelt.
func VisualStyleFor(t Tone) VisualStyle {
	if v, ok := visualStyles[t]; ok {
		return v
	}
	return visualStyles[ToneHeartfelt]
}
