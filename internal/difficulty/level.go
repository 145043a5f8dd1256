package difficulty

// Level is one tier in an ordered difficulty ladder.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// DefaultLevels returns the standard three-tier ladder in ascending order.
func DefaultLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return string(l)
	}
}

// indexOf returns the position of level in levels, or -1 if absent.
func indexOf(levels []Level, level Level) int {
	for i, l := range levels {
		if l == level {
			return i
		}
	}
	return -1
}
