package term

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/algoscope/catalog"
)

// Summary describes a finished run: step count, distinct labels, the size
// of its JSON encoding and the generation time.
func (r *Renderer) Summary(id string, res catalog.Result, elapsed time.Duration) string {
	size := "?"
	if raw, err := json.Marshal(res); err == nil {
		size = humanize.Bytes(uint64(len(raw)))
	}
	return fmt.Sprintf("%s: %s steps, %s labels, %s as JSON, generated in %s",
		r.label.Sprint(id),
		humanize.Comma(int64(res.Len())),
		humanize.Comma(int64(len(res.Labels()))),
		size,
		elapsed.Round(time.Microsecond),
	)
}
