package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Exercise is an immutable catalog entry. Muscles is the muscle group tag,
// empty when the catalog has none for the exercise.
type Exercise struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Muscles string `json:"muscles,omitempty"`
}

// ByMuscle keeps the exercises tagged with muscle. Surrounding blanks are
// ignored on both sides, the same way the distinct muscle list is built.
func ByMuscle(exercises []Exercise, muscle string) []Exercise {
	muscle = strings.TrimSpace(muscle)
	if muscle == "" {
		return exercises
	}
	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if strings.TrimSpace(e.Muscles) == muscle {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func Find(exercises []Exercise, id int) (Exercise, bool) {
	for _, e := range exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// ReadCSV parses "name,muscles" records. A header row starting with "name" is skipped.
func ReadCSV(r io.Reader) ([]Exercise, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var exercises []Exercise
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(record[0], "name") {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("csv line %d: empty exercise name", line)
		}
		e := Exercise{Name: name}
		if len(record) > 1 {
			e.Muscles = strings.TrimSpace(record[1])
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}
