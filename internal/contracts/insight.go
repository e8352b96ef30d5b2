package contracts

import "Planzee/internal/domain/insight"

type InsightCreateResponse struct {
	Message string           `json:"message"`
	Insight *insight.Insight `json:"insight"`
}
