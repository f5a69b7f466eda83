package storage

import (
	"bufio"
	"os"
)

// StorageHealth contains information about the health status of the hours file.
type StorageHealth struct {
	Exists           bool           // Whether the file exists at all
	TotalLines       int            // Total number of non-blank lines in the file
	HeaderRows       int            // Number of header rows found (1 for a healthy file)
	ValidEntries     int            // Number of rows whose cells all validate
	IrregularEntries int            // Number of rows loaded with cells kept as written
	CorruptedEntries int            // Number of rows skipped on load
	Warnings         []ParseWarning // Detailed information about each skipped row
	Irregular        []ParseWarning // Detailed information about each irregular row
}

// Healthy reports whether every row loads and validates.
func (h StorageHealth) Healthy() bool {
	return h.CorruptedEntries == 0 && h.IrregularEntries == 0
}

// ValidateStorage analyzes the hours file and returns its health status.
// Returns an empty health status if the file doesn't exist.
func ValidateStorage(path string) (StorageHealth, error) {
	health := StorageHealth{Warnings: []ParseWarning{}, Irregular: []ParseWarning{}}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, err
	}
	defer func() { _ = file.Close() }()
	health.Exists = true

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			health.TotalLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return health, err
	}

	if _, err := file.Seek(0, 0); err != nil {
		return health, err
	}
	parsed, err := parseRows(file)
	if err != nil {
		return health, err
	}

	health.HeaderRows = parsed.headerRows
	health.ValidEntries = len(parsed.records) - len(parsed.irregular)
	health.IrregularEntries = len(parsed.irregular)
	health.CorruptedEntries = len(parsed.warnings)
	if parsed.warnings != nil {
		health.Warnings = parsed.warnings
	}
	if parsed.irregular != nil {
		health.Irregular = parsed.irregular
	}
	return health, nil
}
