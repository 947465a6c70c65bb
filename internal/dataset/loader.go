// Package dataset loads the static company files into the in-memory store
// the API serves from. Loading happens once at startup; after that the store
// is read-only and safe for concurrent use without locking.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/gmartell/ratioscope/internal/domain/models"
	"github.com/gmartell/ratioscope/internal/logger"
)

const dateLayout = "2006-01-02"

// Load reads every *.json file in dir and builds the Store. The filename
// stem is the company code (uppercased): PETR4.json -> "PETR4". Files are
// parsed concurrently, bounded by the CPU count.
//
// A file whose records cannot be parsed fails the whole load: a record
// missing its date field is a data-integrity fault, not something to coerce
// into a zero value.
func Load(ctx context.Context, dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}

	series := make(map[string]models.Series)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			recs, err := parseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			code := strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name)))

			mu.Lock()
			series[code] = recs
			mu.Unlock()

			logger.L().Debug().Str("code", code).Int("records", len(recs)).Msg("company loaded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	store := NewStore(series)
	logger.L().Info().Int("companies", store.Len()).Str("dir", dir).Msg("dataset loaded")
	return store, nil
}

// parseFile decodes one company file: a JSON array of daily records. Every
// record must carry a parseable "date"; all other fields default to zero
// when absent.
func parseFile(path string) (models.Series, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("invalid JSON")
	}

	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return nil, fmt.Errorf("expected a top-level array of records")
	}

	var out models.Series
	var recErr error
	idx := 0

	root.ForEach(func(_, rec gjson.Result) bool {
		idx++
		d := rec.Get("date")
		if !d.Exists() {
			recErr = fmt.Errorf("record %d: missing date field", idx)
			return false
		}
		date, err := time.Parse(dateLayout, d.String())
		if err != nil {
			recErr = fmt.Errorf("record %d: invalid date %q: %w", idx, d.String(), err)
			return false
		}

		out = append(out, models.Record{
			Date:   date,
			PE:     rec.Get("pe").Float(),
			PB:     rec.Get("pb").Float(),
			PS:     rec.Get("ps").Float(),
			Open:   rec.Get("open").Float(),
			High:   rec.Get("high").Float(),
			Low:    rec.Get("low").Float(),
			Close:  rec.Get("close").Float(),
			Volume: rec.Get("volume").Int(),
			MCap:   rec.Get("mcap").Float(),
		})
		return true
	})

	if recErr != nil {
		return nil, recErr
	}
	return out, nil
}
