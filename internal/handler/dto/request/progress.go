package request

import (
	"strings"

	"fitstudio/internal/usecase/commands"
)

type RecordProgressRequest struct {
	WeightKg     *float64 `json:"weight_kg"`
	HeightCm     *float64 `json:"height_cm"`
	Measurements string   `json:"measurements"`
	Notes        string   `json:"notes"`
}

func (r RecordProgressRequest) ToCommand() commands.RecordProgressRequest {
	return commands.RecordProgressRequest{
		WeightKg:     r.WeightKg,
		HeightCm:     r.HeightCm,
		Measurements: strings.TrimSpace(r.Measurements),
		Notes:        strings.TrimSpace(r.Notes),
	}
}
