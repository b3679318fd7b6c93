package main

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/halfgrid/digirot"
	"github.com/halfgrid/digirot/advanced"
)

// Demo of the injectivity checker. Input on stdin should be newline
// separated lattice points in the form "x y". The angle is given by its
// Pythagorean generators, the translation by two rationals ("1/3" style).
var (
	genP      = kingpin.Flag("p", "first triple generator").Required().Int()
	genQ      = kingpin.Flag("q", "second triple generator").Required().Int()
	t1        = kingpin.Flag("t1", "first translation component").Default("0").String()
	t2        = kingpin.Flag("t2", "second translation component").Default("0").String()
	rangeMode = kingpin.Flag("range", "sweep hinge angles instead of checking the base angle").Bool()
	draw      = kingpin.Flag("draw", "draw the remainder map of the base angle").Bool()
)

func main() {
	kingpin.Parse()

	r1 := parseRat(*t1)
	r2 := parseRat(*t2)
	points := readPoints(os.Stdin)
	fmt.Printf("Read %d points\n", len(points))

	if *draw {
		pyth, err := advanced.NewPythagoreanAngle(*genP, *genQ)
		if err != nil {
			kingpin.Fatalf("%v", err)
		}
		trans, err := advanced.NewTranslation(r1, r2)
		if err != nil {
			kingpin.Fatalf("%v", err)
		}
		advanced.DrawRemainders(pyth, trans, advanced.NewPointSet(points), 400)
	}

	if *rangeMode {
		result, err := digirot.CheckInjectivityRange(*genP, *genQ, r1, r2, points)
		if err != nil {
			kingpin.Fatalf("%v", err)
		}
		switch result.Status {
		case digirot.RangeNonInjective:
			fmt.Printf("base angle already glues %v and %v\n", result.Witness.A, result.Witness.B)
		case digirot.RangeOpen:
			fmt.Println("no hinge boundary found inside the bracket")
		default:
			fmt.Printf("%d certified hinge angles:\n", len(result.Hinges))
			for _, h := range result.Hinges {
				fmt.Printf("  %v\n", h)
			}
			if result.Upper != nil {
				fmt.Printf("upper bound tightened to %v\n", result.Upper)
			}
		}
		return
	}

	pairs, err := digirot.CheckInjectivity(*genP, *genQ, r1, r2, points)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	if len(pairs) == 0 {
		fmt.Println("injective on the given set")
		return
	}
	for _, pair := range pairs {
		fmt.Printf("%v and %v map to the same image\n", pair.A, pair.B)
	}
}

func parseRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		kingpin.Fatalf("not a rational: %q", s)
	}
	return r
}

func readPoints(in *os.File) []digirot.Point {
	points := []digirot.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("bad point line: %q", line)
		}
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			kingpin.Fatalf("bad x value %q: %v", parts[0], err)
		}
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			kingpin.Fatalf("bad y value %q: %v", parts[1], err)
		}
		points = append(points, digirot.Point{X: x, Y: y})
	}
	return points
}
