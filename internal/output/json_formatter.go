package output

import (
	"encoding/json"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// JSONFormatter serializes the projection as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(projection *domain.Projection) ([]byte, error) {
	return json.MarshalIndent(projection, "", "  ")
}
