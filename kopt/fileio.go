package kopt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadTourFile reads a TSPLIB-style tour file: a DIMENSION header followed
// by a TOUR_SECTION of 1-based point ids, one per line. It returns the
// 0-based point order.
//
// Complexity: O(n).
func ReadTourFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTour(f)
}

func readTour(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	dimension := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "TOUR_SECTION") {
			break
		}
		if strings.Contains(line, "DIMENSION") {
			v, err := parseHeaderValue(line)
			if err != nil {
				return nil, err
			}
			dimension = v
		}
	}
	if dimension <= 0 {
		return nil, ErrMalformedFile
	}

	tour := make([]int, 0, dimension)
	for len(tour) < dimension && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, ErrMalformedFile
		}
		tour = append(tour, id-1)
	}
	if len(tour) != dimension {
		return nil, ErrMalformedFile
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tour, nil
}

// WriteTourFile writes tour (0-based point ids) to path as a TSPLIB-style
// tour file with a DIMENSION header and 1-based TOUR_SECTION entries.
//
// Complexity: O(n).
func WriteTourFile(path string, tour []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeTour(f, tour)
}

func writeTour(w io.Writer, tour []int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "DIMENSION: %d\n", len(tour)); err != nil {
		return err
	}
	if _, err := bw.WriteString("TOUR_SECTION\n"); err != nil {
		return err
	}
	for _, p := range tour {
		if _, err := fmt.Fprintf(bw, "%d\n", p+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadCoordinateFile reads a TSPLIB-style point file: a DIMENSION header
// followed by a NODE_COORD_SECTION of "<id> <x> <y>" lines, ids 1-based and
// strictly sequential. It returns parallel x/y coordinate slices.
//
// Complexity: O(n).
func ReadCoordinateFile(path string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return readCoordinates(f)
}

func readCoordinates(r io.Reader) ([]float64, []float64, error) {
	scanner := bufio.NewScanner(r)
	dimension := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "NODE_COORD_SECTION") {
			break
		}
		if strings.Contains(line, "DIMENSION") {
			v, err := parseHeaderValue(line)
			if err != nil {
				return nil, nil, err
			}
			dimension = v
		}
	}
	if dimension <= 0 {
		return nil, nil, ErrMalformedFile
	}

	x := make([]float64, 0, dimension)
	y := make([]float64, 0, dimension)
	for len(x) < dimension && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, ErrMalformedFile
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, ErrMalformedFile
		}
		if id != len(x)+1 {
			return nil, nil, ErrPointIDMismatch
		}
		xv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, ErrMalformedFile
		}
		yv, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, ErrMalformedFile
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if len(x) != dimension {
		return nil, nil, ErrMalformedFile
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// parseHeaderValue extracts the integer after the colon in a "KEY: value"
// header line.
func parseHeaderValue(line string) (int, error) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return 0, ErrMalformedFile
	}
	v, err := strconv.Atoi(strings.TrimSpace(line[idx+1:]))
	if err != nil {
		return 0, ErrMalformedFile
	}
	return v, nil
}
