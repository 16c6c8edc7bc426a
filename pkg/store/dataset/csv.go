package dataset

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type csvStore struct {
	path string

	once    sync.Once
	records []domain.Record
	err     error
}

// NewCSVStore reads a tabular snapshot file. Supported containers: a .zip
// holding a single CSV member, a gzipped CSV, or a plain CSV; the extension
// decides. The parsed table is loaded once and reused for every call.
func NewCSVStore(path string) Store {
	return &csvStore{path: path}
}

func (s *csvStore) Load(ctx context.Context) ([]domain.Record, error) {
	s.once.Do(func() {
		s.records, s.err = s.load(ctx)
	})
	return s.records, s.err
}

func (s *csvStore) load(ctx context.Context) ([]domain.Record, error) {
	reader, closeAll, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeAll()

	return parseRecords(ctx, reader)
}

func (s *csvStore) open() (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".zip":
		archive, err := zip.OpenReader(s.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open dataset archive %s: %w", s.path, err)
		}
		for _, member := range archive.File {
			if strings.HasSuffix(strings.ToLower(member.Name), ".csv") {
				f, err := member.Open()
				if err != nil {
					_ = archive.Close()
					return nil, nil, fmt.Errorf("open archive member %s: %w", member.Name, err)
				}
				return f, func() {
					_ = f.Close()
					_ = archive.Close()
				}, nil
			}
		}
		_ = archive.Close()
		return nil, nil, fmt.Errorf("dataset archive %s has no CSV member", s.path)
	case ".gz":
		f, err := os.Open(s.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open dataset %s: %w", s.path, err)
		}
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, nil, fmt.Errorf("open gzip dataset %s: %w", s.path, err)
		}
		return gz, func() {
			_ = gz.Close()
			_ = f.Close()
		}, nil
	default:
		f, err := os.Open(s.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open dataset %s: %w", s.path, err)
		}
		return f, func() { _ = f.Close() }, nil
	}
}

// parseRecords maps the header row to the required columns and converts every
// data row. Missing required columns fail with *SchemaError before any row is
// read. Unparseable dates become zero dates; the aggregation step drops those
// later. Blank or malformed numeric cells count as zero.
func parseRecords(ctx context.Context, r io.Reader) ([]domain.Record, error) {
	logger := zerolog.Ctx(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var records []domain.Record
	var skipped int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) < len(header) {
			skipped++
			continue
		}

		records = append(records, domain.Record{
			Date:      parseDate(row[index["fecha_archivo"]]),
			Continent: strings.TrimSpace(row[index["continente"]]),
			Country:   strings.TrimSpace(row[index["pais"]]),
			Confirmed: parseCount(row[index["confirmados"]]),
			Active:    parseCount(row[index["activos"]]),
			Recovered: parseCount(row[index["recuperados"]]),
			Deceased:  parseCount(row[index["fallecidos"]]),
		})
	}

	if skipped > 0 {
		logger.Warn().Int("rows", skipped).Msg("skipped malformed dataset rows")
	}
	return records, nil
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Counters sometimes arrive as floats ("123.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(f)
}
