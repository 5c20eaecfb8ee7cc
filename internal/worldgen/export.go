package worldgen

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Export writes a plain-text dump of every record to out, returning the
// number of records written.
func (w *World) Export(ctx context.Context, out io.Writer) (int, error) {
	records, err := w.store.ExportAll(ctx)
	if err != nil {
		return 0, err
	}

	fmt.Fprintln(out, "# neongrid world export")
	fmt.Fprintf(out, "# total cubes: %d\n", len(records))
	fmt.Fprintf(out, "# exported at: %s\n\n", time.Now().UTC().Format(time.RFC3339))

	for _, rec := range records {
		if _, err := fmt.Fprintf(out, "(%d, %d, %d): %s\n",
			rec.Coord.X, rec.Coord.Y, rec.Coord.Z, rec.Description); err != nil {
			return 0, fmt.Errorf("write export: %w", err)
		}
	}
	return len(records), nil
}
