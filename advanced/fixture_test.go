package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Lattice point sets for tests are stored as SVG polygons, one polygon per
// fixture, with integer vertices. This is not a real SVG reader; it finds
// the single polygon element and takes its vertices as the point set,
// panicking on anything unexpected.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PointSet {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, got %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var points []Point
	for _, pair := range strings.Fields(pointString) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point %q in fixture %q", pair, name)
		}
		x, err := strconv.Atoi(coords[0])
		if err != nil {
			log.Fatalf("Non-integer x value %q in fixture %q", coords[0], name)
		}
		y, err := strconv.Atoi(coords[1])
		if err != nil {
			log.Fatalf("Non-integer y value %q in fixture %q", coords[1], name)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return NewPointSet(points)
}
