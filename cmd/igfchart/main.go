// Command igfchart draws the empirical distribution of the Index
// Generation Function's output and runs a chi-square goodness-of-fit
// test against the uniform distribution over [0,N).
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	ntru "ntruenc/ntru"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

// bucketCounts folds the n possible draw values into at most maxBars
// contiguous buckets so the chart stays legible for large N, returning
// per-bucket totals and "lo-hi" range labels (the values themselves
// when no bucketing is needed).
func bucketCounts(counts []int, maxBars int) (labels []string, bars []int) {
	n := len(counts)
	if n <= maxBars {
		labels = make([]string, n)
		for i := range counts {
			labels[i] = fmt.Sprintf("%d", i)
		}
		return labels, counts
	}
	bucketSize := (n + maxBars - 1) / maxBars
	nb := (n + bucketSize - 1) / bucketSize
	bars = make([]int, nb)
	labels = make([]string, nb)
	for i := 0; i < n; i++ {
		bars[i/bucketSize] += counts[i]
	}
	for b := 0; b < nb; b++ {
		lo := b * bucketSize
		hi := lo + bucketSize - 1
		if hi >= n {
			hi = n - 1
		}
		labels[b] = fmt.Sprintf("%d-%d", lo, hi)
	}
	return labels, bars
}

// chiSquareUniform computes the chi-square statistic for counts drawn
// from a uniform distribution over len(counts) categories, along with
// its degrees of freedom.
func chiSquareUniform(counts []int) (stat float64, dof int) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 || len(counts) == 0 {
		return 0, 0
	}
	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat, len(counts) - 1
}

// chiSquarePValueUpperBound gives a coarse Wilson-Hilferty normal
// approximation to the upper-tail p-value; good enough to flag gross
// bias, not a substitute for a proper statistics package.
func chiSquarePValueUpperBound(stat float64, dof int) float64 {
	if dof <= 0 {
		return 1
	}
	k := float64(dof)
	z := (math.Pow(stat/k, 1.0/3.0) - (1 - 2.0/(9*k))) / math.Sqrt(2.0/(9*k))
	return 0.5 * math.Erfc(z/math.Sqrt2)
}

func main() {
	n := flag.Int("n", 439, "ring dimension N")
	count := flag.Int("count", 200000, "number of IGF draws")
	seeds := flag.Int("seeds", 8, "number of independent random seeds to aggregate over")
	hashName := flag.String("hash", "sha512", "hash function: sha512|sha3-512")
	outDir := flag.String("out", "igf_reports", "output directory")
	maxBars := flag.Int("maxbars", 200, "maximum number of histogram bars")
	flag.Parse()

	var hasher ntru.Hasher
	switch *hashName {
	case "", "sha512":
		hasher = ntru.NewSHA512Hasher()
	case "sha3-512":
		hasher = ntru.NewSHA3Hasher()
	default:
		log.Fatalf("unknown hash %q", *hashName)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	counts := make([]int, *n)
	for s := 0; s < *seeds; s++ {
		seed := make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			log.Fatalf("seed: %v", err)
		}
		draws := ntru.IGFSample(seed, *n, *count, hasher)
		for _, idx := range draws {
			counts[idx]++
		}
	}

	stat, dof := chiSquareUniform(counts)
	pUpper := chiSquarePValueUpperBound(stat, dof)

	sorted := append([]int(nil), counts...)
	sort.Ints(sorted)
	total := 0
	for _, c := range counts {
		total += c
	}

	fmt.Printf("N=%d draws=%d chi2=%.3f dof=%d p~=%.4f min=%d max=%d mean=%.2f\n",
		*n, total, stat, dof, pUpper, sorted[0], sorted[len(sorted)-1], float64(total)/float64(*n))

	labels, bars := bucketCounts(counts, *maxBars)
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("N=%d draws=%d chi2=%.2f dof=%d p~=%.4f", *n, total, stat, dof, pUpper)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "IGF index distribution", Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "igfchart", Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("count", toBarItems(bars)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	ts := time.Now().Format("20060102_150405")
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("igf_histogram_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
}
