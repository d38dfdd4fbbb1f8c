package response

import (
	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/usecase"
)

// EstimateResponse reports a dry-run composition. On success Payload holds
// the normalized submission with the computed total; on validation failure
// Errors maps field keys to messages and Payload is omitted. Warnings list
// reference data sets that could not be loaded.
type EstimateResponse struct {
	Valid    bool                 `json:"valid"`
	Payload  *composer.Submission `json:"payload,omitempty"`
	Errors   map[string]string    `json:"errors,omitempty"`
	Warnings []string             `json:"warnings,omitempty"`
}

func FromEstimateResult(res usecase.EstimateResult) EstimateResponse {
	out := EstimateResponse{}
	for _, le := range res.LoadErrors {
		out.Warnings = append(out.Warnings, "failed to load "+le.List)
	}
	if len(res.FieldErrors) > 0 {
		out.Errors = res.FieldErrors
		return out
	}
	sub := res.Submission
	out.Valid = true
	out.Payload = &sub
	return out
}
