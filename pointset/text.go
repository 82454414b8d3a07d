package pointset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/hupe1980/closestpair/point"
)

// ParseText reads one point per line.
func ParseText(r io.Reader) ([]point.Point, error) {
	var pts []point.Point

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) != 3 {
			return nil, fmt.Errorf("pointset: line %d: want 3 coordinates, got %d", line, len(fields))
		}

		var xyz [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("pointset: line %d: %w", line, err)
			}
			xyz[i] = v
		}
		pts = append(pts, point.New(xyz[0], xyz[1], xyz[2]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// WriteText writes pts in the text format. Values round-trip exactly.
func WriteText(w io.Writer, pts []point.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 80)
	for _, p := range pts {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Z, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
