package enc

//go:generate go run ../../tools/lookupgen -alphabet emoji -out emoji_lookup_gen.go

// emojiTable is the canonical emoji alphabet. Entry 0 is the rocket, entry 1 the ringed planet.
// Do not reorder: every string encoded so far depends on the position of each symbol.
// emoji_lookup_gen.go must be regenerated after any change.
var emojiTable = Table{
	'🚀', '🪐', '☄', '🛰', '🌌', '🌑', '🌒', '🌓',
	'🌔', '🌕', '🌖', '🌗', '🌘', '🌍', '🌏', '🌎',
	'🐉', '☀', '💻', '🖥', '💾', '💿', '😂', '❤',
	'😍', '🤣', '😊', '🙏', '💕', '😭', '😘', '👍',
	'😅', '👏', '😁', '🔥', '🥰', '💔', '💖', '💙',
	'😢', '🤔', '😆', '🙄', '💪', '😉', '☺', '👌',
	'🤗', '💜', '😔', '😎', '😇', '🌹', '🤦', '🎉',
	'💞', '✌', '✨', '🤷', '😱', '😌', '🌸', '🙌',
	'😋', '💗', '💚', '😏', '💛', '🙂', '💓', '🤩',
	'😄', '😀', '🖤', '😃', '💯', '🙈', '👇', '🎶',
	'😒', '🤭', '❣', '😜', '💋', '👀', '😪', '😑',
	'💥', '🙋', '😞', '😩', '😡', '🤪', '👊', '🥳',
	'😥', '🤤', '👉', '💃', '😳', '✋', '😚', '😝',
	'😴', '🌟', '😬', '🙃', '🍀', '🌷', '😻', '😓',
	'⭐', '✅', '🥺', '🌈', '😈', '🤘', '💦', '✔',
	'😣', '🏃', '💐', '☹', '🎊', '💘', '😠', '☝',
	'😕', '🌺', '🎂', '🌻', '😐', '🖕', '💝', '🙊',
	'😹', '🗣', '💫', '💀', '👑', '🎵', '🤞', '😛',
	'🔴', '😤', '🌼', '😫', '⚽', '🤙', '☕', '🏆',
	'🤫', '👈', '😮', '🙆', '🍻', '🍃', '🐶', '💁',
	'😲', '🌿', '🧡', '🎁', '⚡', '🌞', '🎈', '❌',
	'✊', '👋', '😰', '🤨', '😶', '🤝', '🚶', '💰',
	'🍓', '💢', '🤟', '🙁', '🚨', '💨', '🤬', '✈',
	'🎀', '🍺', '🤓', '😙', '💟', '🌱', '😖', '👶',
	'🥴', '▶', '➡', '❓', '💎', '💸', '⬇', '😨',
	'🌚', '🦋', '😷', '🕺', '⚠', '🙅', '😟', '😵',
	'👎', '🤲', '🤠', '🤧', '📌', '🔵', '💅', '🧐',
	'🐾', '🍒', '😗', '🤑', '🌊', '🤯', '🐷', '☎',
	'💧', '😯', '💆', '👆', '🎤', '🙇', '🍑', '❄',
	'🌴', '💣', '🐸', '💌', '📍', '🥀', '🤢', '👅',
	'💡', '💩', '👐', '📸', '👻', '🤐', '🤮', '🎼',
	'🥵', '🚩', '🍎', '🍊', '👼', '💍', '📣', '🥂',
}

// EmojiTable returns a copy of the emoji alphabet table.
func EmojiTable() Table {
	return emojiTable
}

type emojiAlphabet struct{}

func (emojiAlphabet) Name() string {
	return "Emoji"
}

func (emojiAlphabet) Symbol(b byte) rune {
	return emojiTable[b]
}

// Index resolves the symbol through the generated switch, so no lookup table has to be built at
// run time.
func (emojiAlphabet) Index(r rune) (byte, bool) {
	return emojiIndex(r)
}

// Emoji encodes each byte into one emoji.
var Emoji = NewCodec('E', emojiAlphabet{})
