package stats_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/debug/stats"
	"github.com/8bitgopher/coco6809/machine"
)

func fakeSnapshotter(snap machine.Stats) stats.Snapshotter {
	return func() machine.Stats { return snap }
}

func TestSnapshotEndpointReturnsCurrentStats(t *testing.T) {
	is := is.New(t)

	want := machine.Stats{
		CyclesExecuted:    123,
		FramesRendered:    4,
		IRQServiced:       2,
		CassetteBytesRead: 9,
		VDGMode:           "text",
	}
	srv := stats.New(fakeSnapshotter(want))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/debug/stats/snapshot", nil)
	srv.Handler().ServeHTTP(rr, req)

	is.Equal(rr.Code, 200)
	is.Equal(rr.Header().Get("Content-Type"), "application/json")

	var got machine.Stats
	is.NoErr(json.Unmarshal(rr.Body.Bytes(), &got))
	is.Equal(got, want)
}

func TestSnapshotEndpointAllowsCrossOrigin(t *testing.T) {
	is := is.New(t)

	srv := stats.New(fakeSnapshotter(machine.Stats{}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/debug/stats/snapshot", nil)
	req.Header.Set("Origin", "http://localhost:9999")
	srv.Handler().ServeHTTP(rr, req)

	is.Equal(rr.Header().Get("Access-Control-Allow-Origin"), "*")
}

func TestChartEndpointRendersWithoutError(t *testing.T) {
	is := is.New(t)

	srv := stats.New(fakeSnapshotter(machine.Stats{CyclesExecuted: 10}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/debug/stats/chart", nil)
	srv.Handler().ServeHTTP(rr, req)

	is.Equal(rr.Code, 200)
	is.True(rr.Body.Len() > 0)
}

func TestChartEndpointServesPastHistoryCap(t *testing.T) {
	is := is.New(t)

	calls := uint64(0)
	srv := stats.New(func() machine.Stats {
		calls++
		return machine.Stats{CyclesExecuted: calls}
	})

	// historyLen is 120; 130 requests push the history past its cap so the
	// trim in record runs. The history is unexported, so this checks only
	// that every request still succeeds.
	for i := 0; i < 130; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/debug/stats/chart", nil)
		srv.Handler().ServeHTTP(rr, req)
		is.Equal(rr.Code, 200)
	}
}
