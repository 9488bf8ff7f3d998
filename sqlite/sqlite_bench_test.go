package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/plss"
	"github.com/fwojciec/plss/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkFindWells measures the name + township/range query the linker
// issues for every document, against a county-sized well table.
func BenchmarkFindWells(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewWellService(db)
	for i := range 2000 {
		require.NoError(b, svc.CreateWell(ctx, &plss.Well{
			APINumber: fmt.Sprintf("35-051-%05d", i),
			Name:      fmt.Sprintf("SMITH %d-%dH", i%36+1, i),
			Operator:  "ACME ENERGY",
			Section:   i%36 + 1,
			Township:  plss.Township{Number: i%12 + 1, Dir: plss.North},
			Range:     plss.Range{Number: i%8 + 1, Dir: plss.West},
			Meridian:  plss.IndianMeridian,
		}))
	}

	prefix := "SMITH 14"
	township := plss.Township{Number: 5, Dir: plss.North}
	rng := plss.Range{Number: 4, Dir: plss.West}

	for b.Loop() {
		_, err := svc.FindWells(ctx, plss.WellFilter{
			NamePrefix: &prefix,
			Township:   &township,
			Range:      &rng,
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
