// normfit reads newline-separated numbers from stdin, describes their
// distribution, and reports how well a normal distribution fits them.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/normstats/go-gaussian/stats"
)

// empiricalTolerance is the three-sigma band tolerance used for the
// goodness-of-fit verdict. Finite samples need more slack than the
// library default.
const empiricalTolerance = 0.05

func main() {
	s := readInput(os.Stdin)
	if len(s.Xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	fmt.Println()

	// Moment-matched normal fit.
	dist, err := stats.NewNormalDist(s.Mean(), s.StdDev())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("fitted normal  mean %.6g  std dev %.6g\n", dist.Mean(), dist.StdDev())
	for _, q := range []float64{0.25, 0.5, 0.75} {
		x := s.Quantile(q)
		fmt.Printf("%6v%%ile %-10.6g pdf %-10.6g cdf %.6g\n",
			100*q, x, dist.PDF(x), dist.CDF(x))
	}
	fmt.Println()

	ok, err := stats.IsNormalDistributed(s.EmpiricalCDF, s.Mean(), s.StdDev(), empiricalTolerance)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if ok {
		fmt.Println("sample is consistent with the fitted normal (three-sigma check)")
	} else {
		fmt.Println("sample deviates from the fitted normal (three-sigma check)")
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
