package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// Store produces the validated raw dataset. Implementations cache the loaded
// table for the process lifetime; the input is immutable for a session.
type Store interface {
	Load(ctx context.Context) ([]domain.Record, error)
}

// RequiredColumns are the source column names the pipeline cannot run
// without.
var RequiredColumns = []string{
	"fecha_archivo",
	"continente",
	"pais",
	"confirmados",
	"activos",
	"recuperados",
	"fallecidos",
}

// SchemaError reports the exact missing column names. It is fatal: no
// partial pipeline run happens on an incomplete schema.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema incomplete, missing columns: %s", strings.Join(e.Missing, ", "))
}
