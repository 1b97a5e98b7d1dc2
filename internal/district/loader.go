package district

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadUnits reads the whitespace-separated unit file: one line per unit with
// "unit district republicans democrats other". Blank lines are skipped.
func LoadUnits(path string) ([]Unit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var units []Unit
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("unit file %s: line %d is invalid: %q", path, lineNum, line)
		}
		values, err := parseInts(fields)
		if err != nil {
			return nil, fmt.Errorf("unit file %s: line %d: %w", path, lineNum, err)
		}
		units = append(units, Unit{
			ID:          UnitID(values[0]),
			District:    DistrictID(values[1]),
			Republicans: values[2],
			Democrats:   values[3],
			Other:       values[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

// LoadNeighbors reads the "unit neighbor" adjacency file and attaches each
// edge to the matching unit in place. An edge naming an unknown unit on
// either side is an error.
func LoadNeighbors(path string, units []Unit) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	byID := make(map[UnitID]int, len(units))
	for i, u := range units {
		byID[u.ID] = i
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("neighbor file %s: line %d is invalid: %q", path, lineNum, line)
		}
		values, err := parseInts(fields)
		if err != nil {
			return fmt.Errorf("neighbor file %s: line %d: %w", path, lineNum, err)
		}
		unit := UnitID(values[0])
		neighbor := UnitID(values[1])
		idx, ok := byID[unit]
		if !ok {
			return fmt.Errorf("neighbor file %s: line %d: unknown unit %d", path, lineNum, unit)
		}
		if _, ok := byID[neighbor]; !ok {
			return fmt.Errorf("neighbor file %s: line %d: unknown neighbor %d", path, lineNum, neighbor)
		}
		units[idx].Neighbors = append(units[idx].Neighbors, neighbor)
	}
	return scanner.Err()
}

// LoadAtlas parses both flat files and builds the validated atlas.
func LoadAtlas(unitsPath, neighborsPath string) (*Atlas, error) {
	units, err := LoadUnits(unitsPath)
	if err != nil {
		return nil, err
	}
	if err := LoadNeighbors(neighborsPath, units); err != nil {
		return nil, err
	}
	return NewAtlas(units)
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
