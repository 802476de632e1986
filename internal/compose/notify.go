package compose

import (
	"github.com/gen2brain/beeep"

	"github.com/coppermind/quill/mention"
)

const notifyBodyLimit = 100

// notifyMention raises an OS notification for a message that mentions the
// current user.
func notifyMention(msg Message) error {
	title := "@" + msg.Author
	body := truncateNotification(mention.ToDisplay(msg.Raw), notifyBodyLimit)
	return beeep.Notify(title, body, "")
}

func truncateNotification(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
