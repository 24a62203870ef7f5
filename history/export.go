package history

import (
	"encoding/json"
	"fmt"
	"io"

	"eurojackpot/models"
)

// ExportJSON writes draws in the bundled dataset format, one draw per line.
// Values are written as decimal strings, as the bundled file stores them.
func ExportJSON(w io.Writer, draws []models.RawDraw) error {
	if draws == nil {
		draws = []models.RawDraw{}
	}

	if _, err := io.WriteString(w, "["); err != nil {
		return fmt.Errorf("failed to write draws: %w", err)
	}
	for i, draw := range draws {
		line, err := json.Marshal(asStrings(draw))
		if err != nil {
			return fmt.Errorf("failed to encode draw %s: %w", draw.Date, err)
		}
		sep := ",\n"
		if i == 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s  %s", sep, line); err != nil {
			return fmt.Errorf("failed to write draws: %w", err)
		}
	}

	closing := "]\n"
	if len(draws) > 0 {
		closing = "\n]\n"
	}
	if _, err := io.WriteString(w, closing); err != nil {
		return fmt.Errorf("failed to write draws: %w", err)
	}
	return nil
}

func asStrings(draw models.RawDraw) models.RawDraw {
	return models.RawDraw{
		Date:        draw.Date,
		Numbers:     stringValues(draw.Numbers),
		StarNumbers: stringValues(draw.StarNumbers),
	}
}

func stringValues(values []models.RawNumber) []models.RawNumber {
	out := make([]models.RawNumber, len(values))
	for i, v := range values {
		out[i] = models.StringValue(v.Text())
	}
	return out
}
