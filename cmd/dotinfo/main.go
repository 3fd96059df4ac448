// Command dotinfo prints the detected CPU vector features, the accepted
// dotproduct preference vocabulary, and the active kernel variant.
//
// Usage:
//
//	dotinfo [flags]
//
// Examples:
//
//	dotinfo
//	dotinfo -method sse
//	dotinfo -config params.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dotprod/dotprod"
	"github.com/cwbudde/algo-dotprod/params"
)

func main() {
	method := flag.String("method", "", "dotproduct preference to apply before printing")
	config := flag.String("config", "", "YAML file with configuration variables")
	flag.Parse()

	store := params.New()
	store.String(dotprod.ParamName, "auto", "Function used for calculation of dot product")

	if *config != "" {
		if err := store.LoadFile(*config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	store.ApplyEnv("DOTPROD")
	if *method != "" {
		store.Set(dotprod.ParamName, *method)
	}

	engine := dotprod.New()
	engine.ApplyVar(store)

	features := engine.Features()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "architecture\t%s\n", features.Architecture)
	if features.Vendor != "" {
		fmt.Fprintf(w, "vendor\t%s\n", features.Vendor)
	}
	if features.Brand != "" {
		fmt.Fprintf(w, "brand\t%s\n", features.Brand)
	}
	fmt.Fprintf(w, "sse4.1\t%v\n", features.HasSSE41)
	fmt.Fprintf(w, "avx\t%v\n", features.HasAVX)
	fmt.Fprintf(w, "avx2\t%v\n", features.HasAVX2)
	fmt.Fprintf(w, "avx512f\t%v\n", features.HasAVX512F)
	fmt.Fprintf(w, "avx512bw\t%v\n", features.HasAVX512BW)
	fmt.Fprintf(w, "neon\t%v\n", features.HasNEON)
	fmt.Fprintf(w, "accepted\t%s\n", strings.Join(engine.Accepted(), " "))
	fmt.Fprintf(w, "active\t%s\n", engine.Method())
	fmt.Fprintf(w, "stored\t%s\n", store.Get(dotprod.ParamName))

	u := []float64{1, 2, 3}
	v := []float64{4, 5, 6}
	fmt.Fprintf(w, "sample\t%g\n", engine.DotProduct(u, v))
	w.Flush()
}
