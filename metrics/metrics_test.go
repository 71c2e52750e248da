package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/metrics"
)

func TestNewRegistry(t *testing.T) {
	r := metrics.NewRegistry()
	require.NotNil(t, r)

	n, err := testutil.GatherAndCount(r.Gatherer())
	require.NoError(t, err)
	// unlabelled metrics are exposed from creation
	assert.Equal(t, 8, n)
}

func TestObserveGraph(t *testing.T) {
	g, err := core.NewWordGraph(3)
	require.NoError(t, err)
	g.IncludeAll("cat", "dog", "cot", "cog", "dot")

	r := metrics.NewRegistry()
	r.ObserveGraph(g)
	assert.Equal(t, 5.0, testutil.ToFloat64(r.GraphNodes))
	assert.Equal(t, float64(g.Size()), testutil.ToFloat64(r.GraphEdges))
}

func TestObserveLoad(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveLoad(dictionary.Stats{Lines: 9, Accepted: 6, Rejected: 3})
	r.ObserveLoad(dictionary.Stats{Lines: 1, Accepted: 1})
	assert.Equal(t, 10.0, testutil.ToFloat64(r.DictionaryLinesTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.DictionaryRejectedTotal))
}

func TestObserveLadder(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveNoLadder()
	assert.Equal(t, -1.0, testutil.ToFloat64(r.LadderLength))

	r.ObserveLadder(ladder.Ladder{"cat", "cot", "cog", "dog"})
	r.ObserveLadder(ladder.Ladder{"cat", "cot", "dot", "dog"})
	assert.Equal(t, 2.0, testutil.ToFloat64(r.LaddersEmittedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.LadderLength))
}

func TestObserveVisit(t *testing.T) {
	r := metrics.NewRegistry()
	g, err := core.NewWordGraph(3)
	require.NoError(t, err)
	g.IncludeAll("cat", "dog", "cot", "cog", "dot")

	seq := ladder.AllShortestPaths(g, "cat", "dog", ladder.WithOnVisit(func(string, int) { r.ObserveVisit() }))
	for range seq.All() {
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(r.BFSVisitedTotal))
}

func TestObserveQuery(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveQuery(20 * time.Millisecond)
	r.ObserveQuery(2 * time.Second)

	var m dto.Metric
	require.NoError(t, r.QueryDuration.Write(&m))
	assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
	assert.InDelta(t, 2.02, m.GetHistogram().GetSampleSum(), 1e-9)
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveLoad(dictionary.Stats{Lines: 4, Accepted: 4})
	r.GraphNodes.Set(6)

	path := filepath.Join(t.TempDir(), "wordladder.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, "wordladder_graph_nodes 6"), text)
	assert.True(t, strings.Contains(text, "wordladder_dictionary_lines_total 4"), text)
	assert.True(t, strings.Contains(text, "# TYPE wordladder_query_duration_seconds histogram"), text)
}
