// Package stats serves a small HTTP dashboard over machine.Machine's
// run-time counters, grounded on _examples/JetSetIlly-Gopher2600/statsview's
// go-echarts/statsview wiring (itself gated behind a build tag there; here
// it is an ordinary optional flag instead, since cmd/coco6809 decides at
// run time whether a dashboard address was given). A go-echarts/v2 line
// chart renders the counters statsview's own runtime/GC view has no way
// to show, and rs/cors lets a browser-based frontend poll the JSON
// snapshot endpoint from a different origin during development.
package stats

import (
	"encoding/json"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/cors"

	"github.com/8bitgopher/coco6809/machine"
)

const historyLen = 120

// Snapshotter is the subset of machine.Machine stats needs: a way to pull
// the current counters without the two packages depending on each other's
// internals. machine.Machine.Stats satisfies it.
type Snapshotter func() machine.Stats

// Server is an HTTP server exposing a machine's run-time counters as JSON
// and as a go-echarts dashboard. statsview's Go-runtime view is not part of
// it; LaunchRuntimeView starts that on its own listener.
type Server struct {
	snapshot Snapshotter
	mux      *http.ServeMux

	history []machine.Stats
}

// runtimeStatsAddr is statsview's own Go-runtime/GC dashboard, served on
// its own listener exactly as
// _examples/JetSetIlly-Gopher2600/statsview.Launch does; it has no way to
// plot application-specific counters, so it runs alongside, not inside,
// Server's own mux.
const runtimeStatsAddr = "localhost:12600"

// New constructs a Server. snapshot is called on every request, so it
// must be safe to call from whatever goroutine serves HTTP requests.
// Call LaunchRuntimeView separately to also start statsview's Go-runtime
// dashboard; New itself opens no listener.
func New(snapshot Snapshotter) *Server {
	s := &Server{snapshot: snapshot, mux: http.NewServeMux()}
	s.mux.HandleFunc("/debug/stats/snapshot", s.handleSnapshot)
	s.mux.HandleFunc("/debug/stats/chart", s.handleChart)
	return s
}

// LaunchRuntimeView starts statsview's own Go-runtime/GC dashboard on its
// own listener, exactly as
// _examples/JetSetIlly-Gopher2600/statsview.Launch does.
func LaunchRuntimeView() {
	viewer.SetConfiguration(viewer.WithAddr(runtimeStatsAddr))
	mgr := statsview.New()
	go mgr.Start()
}

// ListenAndServe blocks serving the dashboard at addr, wrapped in
// permissive CORS so a locally-hosted frontend can poll it.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the dashboard's routes wrapped in permissive CORS,
// usable directly in tests or by an embedding application's own mux.
func (s *Server) Handler() http.Handler {
	return cors.AllowAll().Handler(s.mux)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, req *http.Request) {
	snap := s.record()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// record appends the latest snapshot to the rolling history buffer used
// by the chart endpoint, trimming it to historyLen entries.
func (s *Server) record() machine.Stats {
	snap := s.snapshot()
	s.history = append(s.history, snap)
	if len(s.history) > historyLen {
		s.history = s.history[len(s.history)-historyLen:]
	}
	return snap
}

func (s *Server) handleChart(w http.ResponseWriter, req *http.Request) {
	s.record()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "coco6809 cycles executed"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample"}),
	)

	xs := make([]int, len(s.history))
	cycles := make([]opts.LineData, len(s.history))
	frames := make([]opts.LineData, len(s.history))
	for i, snap := range s.history {
		xs[i] = i
		cycles[i] = opts.LineData{Value: snap.CyclesExecuted}
		frames[i] = opts.LineData{Value: snap.FramesRendered}
	}

	line.SetXAxis(xs).
		AddSeries("cycles executed", cycles).
		AddSeries("frames rendered", frames)

	line.Render(w)
}
