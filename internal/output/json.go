package output

import (
	"encoding/json"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// JSONFormatter formats a plan result as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output. The best field is omitted entirely when
// no scenario reaches the goal, so consumers can tell "no result" apart
// from a result.
func (jf *JSONFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
