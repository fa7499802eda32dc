// Command bench compares the vector against other in-memory sequences,
// cross-checks it against an immutable list oracle, and renders benchmark
// JSON as SVG charts.
//
//	bench run     times the workloads and writes model JSON to stdout
//	bench verify  replays random operation scripts against the oracle
//	bench svg     reads model JSON from stdin and writes chart files
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/felixge/fgprof"
	"github.com/google/btree"
	"github.com/prometheus/common/promslog"
	"golang.org/x/sync/errgroup"

	"github.com/gernest/vec/internal/checksum"
	"github.com/gernest/vec/vector"
)

var (
	n       = flag.Int("n", 1<<20, "elements per append workload")
	seeds   = flag.Int("seeds", 64, "verify: random scripts to replay")
	ops     = flag.Int("ops", 4096, "verify: operations per script")
	profile = flag.String("profile", "", "run: write fgprof wall-clock profile to file")
)

func main() {
	flag.Parse()
	lo := promslog.New(&promslog.Config{})
	switch flag.Arg(0) {
	case "", "run":
		run(lo)
	case "verify":
		verify(lo)
	case "svg":
		renderSVG(lo)
	default:
		lo.Error("unknown mode", "mode", flag.Arg(0))
		os.Exit(1)
	}
}

func run(lo *slog.Logger) {
	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			lo.Error("creating profile file", "path", *profile, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				lo.Error("writing profile", "path", *profile, "err", err)
			}
		}()
	}
	small := min(*n, 1<<14)
	models := []model{
		{Name: "append", Unit: "ms", Step: 10, Entries: appendEntries(lo, *n)},
		{Name: "iterate-sum", Unit: "ms", Step: 5, Entries: iterateEntries(lo, *n)},
		{Name: "insert-random", Unit: "ms", Step: 10, Entries: insertEntries(lo, small)},
		{Name: "erase-front", Unit: "ms", Step: 10, Entries: eraseEntries(lo, small)},
	}
	json.NewEncoder(os.Stdout).Encode(models)
}

func appendEntries(lo *slog.Logger, n int) []entry {
	v := vector.New[uint64]()
	e := []entry{timed("vector", func() {
		for i := range n {
			v.Append(uint64(i))
		}
	})}
	want := checksum.Of(v.Slice())

	var s []uint64
	e = append(e, timed("builtin append", func() {
		for i := range n {
			s = append(s, uint64(i))
		}
	}))
	mustMatch(lo, "append/builtin", want, checksum.Of(s))

	l := immutable.NewList[uint64]()
	e = append(e, timed("immutable.List", func() {
		for i := range n {
			l = l.Append(uint64(i))
		}
	}))
	mustMatch(lo, "append/immutable", want, checksum.Of(listSlice(l)))

	bt := btree.NewG(32, func(a, b uint64) bool { return a < b })
	e = append(e, timed("btree.BTreeG", func() {
		for i := range n {
			bt.ReplaceOrInsert(uint64(i))
		}
	}))
	mustMatch(lo, "append/btree", want, checksum.Of(btreeSlice(bt)))
	return e
}

func iterateEntries(lo *slog.Logger, n int) []entry {
	v := vector.New[uint64]()
	s := make([]uint64, 0, n)
	l := immutable.NewList[uint64]()
	bt := btree.NewG(32, func(a, b uint64) bool { return a < b })
	for i := range n {
		x := uint64(i)
		v.Append(x)
		s = append(s, x)
		l = l.Append(x)
		bt.ReplaceOrInsert(x)
	}

	var want, got uint64
	e := []entry{timed("vector", func() {
		for x := range v.Values() {
			want += x
		}
	})}
	e = append(e, timed("builtin range", func() {
		for _, x := range s {
			got += x
		}
	}))
	mustMatch(lo, "iterate/builtin", want, got)
	got = 0
	e = append(e, timed("immutable.List", func() {
		for it := l.Iterator(); !it.Done(); {
			_, x := it.Next()
			got += x
		}
	}))
	mustMatch(lo, "iterate/immutable", want, got)
	got = 0
	e = append(e, timed("btree.BTreeG", func() {
		bt.Ascend(func(x uint64) bool {
			got += x
			return true
		})
	}))
	mustMatch(lo, "iterate/btree", want, got)
	return e
}

func insertEntries(lo *slog.Logger, n int) []entry {
	rnd := rand.New(rand.NewSource(1))
	v := vector.New[uint64]()
	e := []entry{timed("vector", func() {
		for i := range n {
			v.Insert(rnd.Intn(v.Len()+1), uint64(i))
		}
	})}
	want := checksum.Of(v.Slice())

	rnd = rand.New(rand.NewSource(1))
	var s []uint64
	e = append(e, timed("builtin slices.Insert", func() {
		for i := range n {
			s = slices.Insert(s, rnd.Intn(len(s)+1), uint64(i))
		}
	}))
	mustMatch(lo, "insert/builtin", want, checksum.Of(s))
	return e
}

func eraseEntries(lo *slog.Logger, n int) []entry {
	v := vector.New[uint64]()
	var s []uint64
	for i := range n {
		v.Append(uint64(i))
		s = append(s, uint64(i))
	}
	var want, got uint64
	e := []entry{timed("vector", func() {
		for v.Len() > 0 {
			want += *v.At(0)
			v.Erase(0)
		}
	})}
	e = append(e, timed("builtin slices.Delete", func() {
		for len(s) > 0 {
			got += s[0]
			s = slices.Delete(s, 0, 1)
		}
	}))
	mustMatch(lo, "erase/builtin", want, got)
	return e
}

func verify(lo *slog.Logger) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for seed := range *seeds {
		g.Go(func() error {
			return script(int64(seed), *ops)
		})
	}
	if err := g.Wait(); err != nil {
		lo.Error("verification failed", "err", err)
		os.Exit(1)
	}
	lo.Info("verified", "seeds", *seeds, "ops", *ops)
}

// script applies the same random operations to a vector and an immutable list
// and reports the first divergence.
func script(seed int64, ops int) error {
	rnd := rand.New(rand.NewSource(seed))
	v := vector.New[int]()
	l := immutable.NewList[int]()
	for op := 0; op < ops; op++ {
		switch k := rnd.Intn(10); {
		case k < 4:
			x := rnd.Intn(1000)
			v.Append(x)
			l = l.Append(x)
		case k < 6:
			i := rnd.Intn(v.Len() + 1)
			x := rnd.Intn(1000)
			v.Insert(i, x)
			l = listInsert(l, i, x)
		case k < 8 && v.Len() > 0:
			i := rnd.Intn(v.Len())
			v.Erase(i)
			l = listErase(l, i)
		case k < 9 && v.Len() > 0:
			i := rnd.Intn(v.Len())
			x := rnd.Intn(1000)
			*v.At(i) = x
			l = l.Set(i, x)
		default:
			v.PopBack()
			if l.Len() > 0 {
				l = l.Slice(0, l.Len()-1)
			}
		}
		if v.Len() != l.Len() {
			return fmt.Errorf("seed %d op %d: len %d, oracle %d", seed, op, v.Len(), l.Len())
		}
		for i := 0; i < v.Len(); i++ {
			if *v.At(i) != l.Get(i) {
				return fmt.Errorf("seed %d op %d: element %d is %d, oracle %d", seed, op, i, *v.At(i), l.Get(i))
			}
		}
	}
	return nil
}

func listInsert(l *immutable.List[int], i, x int) *immutable.List[int] {
	out := l.Slice(0, i).Append(x)
	for k := i; k < l.Len(); k++ {
		out = out.Append(l.Get(k))
	}
	return out
}

func listErase(l *immutable.List[int], i int) *immutable.List[int] {
	out := l.Slice(0, i)
	for k := i + 1; k < l.Len(); k++ {
		out = out.Append(l.Get(k))
	}
	return out
}

func listSlice(l *immutable.List[uint64]) []uint64 {
	out := make([]uint64, 0, l.Len())
	for it := l.Iterator(); !it.Done(); {
		_, x := it.Next()
		out = append(out, x)
	}
	return out
}

func btreeSlice(bt *btree.BTreeG[uint64]) []uint64 {
	out := make([]uint64, 0, bt.Len())
	bt.Ascend(func(x uint64) bool {
		out = append(out, x)
		return true
	})
	return out
}

func mustMatch(lo *slog.Logger, workload string, want, got uint64) {
	if want != got {
		lo.Error("implementations disagree", "workload", workload, "want", want, "got", got)
		os.Exit(1)
	}
}

func timed(name string, f func()) entry {
	start := time.Now()
	f()
	ms := float64(time.Since(start)) / float64(time.Millisecond)
	return entry{Name: name, Value: math.Round(ms*10) / 10}
}

func renderSVG(lo *slog.Logger) {
	var models []model
	if err := json.NewDecoder(os.Stdin).Decode(&models); err != nil {
		lo.Error("decoding models", "err", err)
		os.Exit(1)
	}
	for i := range models {
		m := &models[i]
		light := svg(m.Unit, m.Step, false, m.Entries)
		dark := svg(m.Unit, m.Step, true, m.Entries)
		os.WriteFile(fmt.Sprintf("%v-light.svg", m.Name), []byte(light), 0600)
		os.WriteFile(fmt.Sprintf("%v-dark.svg", m.Name), []byte(dark), 0600)
	}
}

type model struct {
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Step    float64 `json:"step"`
	Entries []entry `json:"entries"`
}

type entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func svg(unit string, horizontalStep float64, dark bool, entries []entry) string {
	var mx float64
	for i := range entries {
		mx = max(mx, entries[i].Value)
	}
	topMargin := 20.0
	leftWidth := 120.0
	barHeight := 20.0
	barMargin := 3.0
	labelMargin := 8.0
	bottomHeight := 30.0
	rightWidth := 800 - leftWidth
	topHeight := float64(len(entries)) * barHeight
	width := leftWidth + rightWidth
	height := topMargin + topHeight + bottomHeight
	horizontalScale := float64((int(rightWidth) - 100) / int(mx))
	var textFill string
	if dark {
		textFill = ` fill="#C9D1D9"`
	}
	var svg []string
	svg = append(svg,
		fmt.Sprintf(`<svg width="%v" height="%v" fill="black" font-family="sans-serif" font-size="13px" xmlns="http://www.w3.org/2000/svg">`, width, height),
	)

	// Horizontal axis bars
	for i := 0.0; i*horizontalScale < rightWidth; i += horizontalStep {
		x := leftWidth + i*horizontalScale
		svg = append(svg, fmt.Sprintf(`  <rect x="%v" y="%v" width="1" height="%v" fill="#7F7F7F" fill-opacity="0.25"/>`, x, topMargin, topHeight))
	}

	// Bars
	for i := range entries {
		name, time := entries[i].Name, entries[i].Value
		y := topMargin + barHeight*float64(i)
		w := time * horizontalScale

		h := barHeight
		barY := y + barMargin
		barH := h - 2*barMargin
		var bold string
		if i == 0 {
			bold = ` font-weight="bold"`
		}
		label := name
		svg = append(svg, fmt.Sprintf(`  <rect x="%v" y="%v" width="%v" height="%v" fill="#FFCF00"/>`, leftWidth, barY, w, barH))
		svg = append(svg, fmt.Sprintf(`  <text x="%v" y="%v" text-anchor="end" dominant-baseline="middle"%v%v>%v</text>`,
			leftWidth-labelMargin, y+h/2, bold, textFill, label))
		svg = append(svg, fmt.Sprintf(`  <text x="%v" y="%v" dominant-baseline="middle"%v%v>%v%v</text>`,
			leftWidth+labelMargin+w, y+h/2, bold, textFill, time, unit))
	}

	// Horizontal labels
	for i := 0.0; i*horizontalScale < rightWidth; i += horizontalStep {
		x := leftWidth + i*horizontalScale
		y := topMargin + topHeight + labelMargin/2
		svg = append(svg, fmt.Sprintf(`  <text x="%v" y="%v" text-anchor="middle" dominant-baseline="hanging"%v>%v%v</text>`,
			x, y, textFill, i, unit))
	}
	svg = append(svg, `</svg>`)
	return strings.Join(svg, "\n")
}
