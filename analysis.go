package lsystem

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultAnalysisEventLimit caps how many events a single depth-bounded walk
// may produce during analysis.
const DefaultAnalysisEventLimit = 1 << 22

// GrowthSample describes one round of analysis: the flat sequence length after
// Round rewriting rounds, and the event counts of a walk bounded at depth
// Round+1.
type GrowthSample struct {
	Round      int
	FlatLength int
	Pushes     int
	Pops       int
	Renders    int
	// Truncated is set when the walk hit the event limit.
	Truncated bool
}

type Growth struct {
	Axiom   []Token
	Samples []GrowthSample
}

// AnalyseGrowth measures how fast the system grows under both bounding modes.
// Rounds 0 through rounds are sampled; walks start from the lead symbol of
// axiom and stop after eventLimit events.
func (l *LSystem) AnalyseGrowth(axiom []Token, rounds, eventLimit int) Growth {
	if eventLimit <= 0 {
		eventLimit = DefaultAnalysisEventLimit
	}
	g := Growth{Axiom: axiom, Samples: make([]GrowthSample, 0, rounds+1)}

	expander := NewExpander(l.Rules, axiom)
	for round := 0; round <= rounds; round++ {
		if round > 0 {
			expander.IterateOnce()
		}
		sample := GrowthSample{Round: round, FlatLength: expander.Len()}

		walker := l.Walk(axiom, round+1)
		events := 0
		for e := range walker.All() {
			switch e.Kind {
			case EventPush:
				sample.Pushes++
			case EventPop:
				sample.Pops++
			case EventRender:
				sample.Renders++
			}
			events++
			if events >= eventLimit {
				sample.Truncated = true
				break
			}
		}
		g.Samples = append(g.Samples, sample)
	}
	return g
}

// AverageGrowth is the mean ratio between consecutive flat lengths.
func (g Growth) AverageGrowth() float64 {
	total, n := 0.0, 0
	for i := 1; i < len(g.Samples); i++ {
		prev := g.Samples[i-1].FlatLength
		if prev == 0 {
			continue
		}
		total += float64(g.Samples[i].FlatLength) / float64(prev)
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func (g Growth) RenderChart(w io.Writer) error {
	labels := make([]string, len(g.Samples))
	flat := make([]opts.BarData, len(g.Samples))
	renders := make([]opts.BarData, len(g.Samples))
	depth := make([]opts.LineData, len(g.Samples))
	for i, s := range g.Samples {
		labels[i] = strconv.Itoa(s.Round)
		flat[i] = opts.BarData{Value: s.FlatLength}
		renders[i] = opts.BarData{Value: s.Renders}
		depth[i] = opts.LineData{Value: s.Pushes}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Growth Analysis",
		Subtitle: "Axiom " + TokensString(g.Axiom) + " (avg growth " + strconv.FormatFloat(g.AverageGrowth(), 'f', 4, 64) + ")",
	}))
	bar.SetXAxis(labels).
		AddSeries("Flat length after n rounds", flat).
		AddSeries("Rendered symbols at depth n+1", renders)

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Frames pushed per depth bound",
	}))
	line.SetXAxis(labels).AddSeries("Pushes", depth)

	page := components.NewPage()
	page.AddCharts(bar, line)
	return page.Render(w)
}

// Serve exposes the growth chart of axiom over HTTP until the server fails.
func (l *LSystem) Serve(addr string, axiom []Token, rounds int) error {
	http.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		growth := l.AnalyseGrowth(axiom, rounds, 0)
		if err := growth.RenderChart(w); err != nil {
			log.Println("rendering chart:", err)
		}
	})
	log.Println("Serving growth analysis on", addr)
	return http.ListenAndServe(addr, nil)
}
