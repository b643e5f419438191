// Command kdtree builds a tree of random integer points, optionally adds one
// more, and prints the nearest neighbour of a query point.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"kdtree"
)

func main() {
	n := flag.Int("n", 10000, "number of random points to build the tree from")
	dims := flag.Int("dims", 2, "dimensionality of the random points")
	maxCoord := flag.Int("max", 1000000000, "random coordinates are drawn from [0, max)")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the current time")
	add := flag.String("add", "", "space separated coordinates of a point to add after building")
	query := flag.String("query", "9 4", "space separated coordinates of the query point")
	verbose := flag.Bool("v", false, "log tree diagnostics")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := kdtree.NewTextLogger(level)

	if err := run(logger, *n, *dims, *maxCoord, *seed, *add, *query); err != nil {
		logger.Error("kdtree failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, n, dims, maxCoord int, seed int64, add, query string) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	points := make([]*kdtree.Point[int], n)
	for i := range points {
		coords := make([]int, dims)
		for j := range coords {
			coords[j] = rnd.Intn(maxCoord)
		}
		points[i] = kdtree.NewPoint(coords...)
	}

	start := time.Now()
	tree, err := kdtree.New(points, kdtree.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	logger.Info("built tree", "points", tree.Len(), "height", tree.Height(), "elapsed", time.Since(start))

	if add != "" {
		p, err := parsePoint(add)
		if err != nil {
			return fmt.Errorf("parse -add: %w", err)
		}
		ok, err := tree.Add(p)
		if err != nil {
			return fmt.Errorf("add %s: %w", p, err)
		}
		logger.Info("added point", "point", p.String(), "inserted", ok)
	}

	q, err := parsePoint(query)
	if err != nil {
		return fmt.Errorf("parse -query: %w", err)
	}
	nn, err := tree.NearestNeighbour(q)
	if err != nil {
		return fmt.Errorf("nearest neighbour of %s: %w", q, err)
	}
	fmt.Println(nn)
	return nil
}

func parsePoint(s string) (*kdtree.Point[int], error) {
	fields := strings.Fields(s)
	coords := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		coords[i] = v
	}
	return kdtree.NewPoint(coords...), nil
}
