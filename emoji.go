package mdr

import "github.com/yuin/goldmark-emoji/definition"

var githubEmojis = definition.Github()

// emojiRune resolves a :shortcode: name against the GitHub emoji set.
// Names without a unicode mapping report false and stay literal.
func emojiRune(name string) (string, bool) {
	em, ok := githubEmojis.Get(name)
	if !ok || !em.IsUnicode() {
		return "", false
	}
	return string(em.Unicode), true
}
