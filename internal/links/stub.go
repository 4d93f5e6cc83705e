package links

import (
	"fmt"

	"github.com/google/uuid"
)

// Generate builds count links named prefix-0..prefix-(count-1). Only the first
// generated link carries sublinks, mirroring how demo trees nest one branch
// per level.
func Generate(prefix string, count int, sublinks []Link) []Link {
	out := make([]Link, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s-%d", prefix, i)
		l := Link{
			ID:    fmt.Sprintf("%s-%s", prefix, uuid.NewString()),
			Title: name,
			URL:   name,
		}
		if i < 1 {
			l.Sublinks = sublinks
		}
		out = append(out, l)
	}
	return out
}

// Stub returns the demonstration tree shown when no links file is supplied.
func Stub() []Link {
	var out []Link
	out = append(out, Generate("levelA1", 1,
		Generate("LevelB1", 22,
			Generate("LevelC1", 25,
				Generate("LevelD1", 2,
					Generate("LevelE1", 3, nil)))))...)
	out = append(out, Generate("levelA2", 1,
		Generate("LevelB2", 8,
			Generate("LevelC2", 5, nil)))...)
	out = append(out, Generate("levelA3", 15,
		Generate("LevelB3", 10,
			Generate("LevelC", 4, nil)))...)
	return out
}
