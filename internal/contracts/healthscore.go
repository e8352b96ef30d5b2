package contracts

import "Planzee/internal/domain/healthscore"

type HealthLevelsResponse struct {
	Levels []healthscore.LevelRange `json:"levels"`
}
