package healthscore

type Level string

const (
	LevelGood     Level = "good"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

const (
	criticalBelow = 50
	warningBelow  = 75
)

type LevelRange struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Level Level  `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var LevelRanges = []LevelRange{
	{Min: warningBelow, Max: 100, Level: LevelGood, Label: "Saudável", Color: "#4CAF50"},
	{Min: criticalBelow, Max: warningBelow - 1, Level: LevelWarning, Label: "Atenção", Color: "#FF9800"},
	{Min: 0, Max: criticalBelow - 1, Level: LevelCritical, Label: "Crítico", Color: "#F44336"},
}

// LevelFor classifica uma pontuação já limitada a [0, 100].
func LevelFor(score int) Level {
	if score < criticalBelow {
		return LevelCritical
	} else if score < warningBelow {
		return LevelWarning
	}
	return LevelGood
}

func LevelInfo(level Level) LevelRange {
	for _, r := range LevelRanges {
		if r.Level == level {
			return r
		}
	}
	return LevelRanges[len(LevelRanges)-1]
}

func (l Level) IsValid() bool {
	switch l {
	case LevelGood, LevelWarning, LevelCritical:
		return true
	}
	return false
}
