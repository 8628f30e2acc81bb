package workload

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// csvColumns is the required header of a process table, in order.
var csvColumns = []string{"id", "size", "arrival", "burst"}

// LoadCSV reads a process table:
//
//	id,size,arrival,burst
//	P1,200,0,5
//	P2,50,1,3
//
// and validates it with the same rules as the YAML spec.
func LoadCSV(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading process table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("process table is empty")
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	spec := &Spec{}
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		spec.Processes = append(spec.Processes, rec)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid process table: %w", err)
	}
	logrus.Infof("loaded %d processes from %s", len(spec.Processes), path)
	return spec, nil
}

func checkHeader(header []string) error {
	if len(header) != len(csvColumns) {
		return fmt.Errorf("header must be %q, got %d columns", strings.Join(csvColumns, ","), len(header))
	}
	for i, col := range csvColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return fmt.Errorf("header column %d must be %q, got %q", i+1, col, header[i])
		}
	}
	return nil
}

func parseRow(row []string) (ProcessRecord, error) {
	if len(row) != len(csvColumns) {
		return ProcessRecord{}, fmt.Errorf("expected %d fields, got %d", len(csvColumns), len(row))
	}
	id := strings.TrimSpace(row[0])
	size, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("size: %w", err)
	}
	arrival, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("arrival: %w", err)
	}
	burst, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("burst: %w", err)
	}
	return ProcessRecord{ID: id, SizeKB: size, Arrival: arrival, Burst: burst}, nil
}
