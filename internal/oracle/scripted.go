package oracle

import (
	"context"
	"fmt"
	"sync"
)

// DefaultScript is the wizard's canned voice, one list of lines per emotion.
var DefaultScript = map[Emotion][]string{
	Neutral: {
		"Focus, initiate. The cursor obeys only the disciplined.",
		"Your hands hover. The mouse will not save you here.",
	},
	Happy: {
		"Acceptable. Perhaps there is hope for you.",
		"The runes align. Continue.",
	},
	Angry: {
		"You dare reach for the arrow keys?",
		"Again. Slower. With intent.",
	},
	Casting: {
		"The glyphs shift beneath my gaze...",
		"I summon a new trial from the void.",
	},
	Impressed: {
		"Impressive. The dead code bows to your will.",
		"Even the ancient ones would nod at that refactor.",
	},
}

// ScriptedDialogue answers from a fixed script, rotating through the lines of each emotion.
type ScriptedDialogue struct {
	mu     sync.Mutex
	script map[Emotion][]string
	next   map[Emotion]int
}

// NewScriptedDialogue returns dialogue over script. A nil script uses DefaultScript.
func NewScriptedDialogue(script map[Emotion][]string) *ScriptedDialogue {
	if script == nil {
		script = DefaultScript
	}
	return &ScriptedDialogue{script: script, next: make(map[Emotion]int)}
}

// Remark returns the next line for emotion. The situation is not consulted.
func (d *ScriptedDialogue) Remark(ctx context.Context, _ string, emotion Emotion) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	lines, ok := d.script[emotion]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, emotion)
	}
	if len(lines) == 0 {
		return "", nil
	}
	i := d.next[emotion]
	d.next[emotion] = (i + 1) % len(lines)
	return lines[i], nil
}
