package compose

import "github.com/coppermind/quill/mention"

// builtinShortcodes is the emoji set offered behind the `:` trigger. Order
// matters: with an empty filter the head of this list is shown as-is.
var builtinShortcodes = []mention.Shortcode{
	{Name: "thumbsup", Glyph: "👍"},
	{Name: "heart", Glyph: "❤️"},
	{Name: "fire", Glyph: "🔥"},
	{Name: "tada", Glyph: "🎉"},
	{Name: "smile", Glyph: "😄"},
	{Name: "joy", Glyph: "😂"},
	{Name: "wink", Glyph: "😉"},
	{Name: "grin", Glyph: "😁"},
	{Name: "cry", Glyph: "😢"},
	{Name: "sweat", Glyph: "😅"},
	{Name: "thinking", Glyph: "🤔"},
	{Name: "shrug", Glyph: "🤷"},
	{Name: "facepalm", Glyph: "🤦"},
	{Name: "eyes", Glyph: "👀"},
	{Name: "wave", Glyph: "👋"},
	{Name: "clap", Glyph: "👏"},
	{Name: "pray", Glyph: "🙏"},
	{Name: "ok", Glyph: "👌"},
	{Name: "thumbsdown", Glyph: "👎"},
	{Name: "rocket", Glyph: "🚀"},
	{Name: "ship", Glyph: "🚢"},
	{Name: "check", Glyph: "✅"},
	{Name: "x", Glyph: "❌"},
	{Name: "warning", Glyph: "⚠️"},
	{Name: "bulb", Glyph: "💡"},
	{Name: "zap", Glyph: "⚡"},
	{Name: "star", Glyph: "⭐"},
	{Name: "sparkles", Glyph: "✨"},
	{Name: "bug", Glyph: "🐛"},
	{Name: "coffee", Glyph: "☕"},
	{Name: "party", Glyph: "🥳"},
	{Name: "100", Glyph: "💯"},
}
