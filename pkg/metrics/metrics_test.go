package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/miajio/dict/pkg/dictionary"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.Record(dictionary.Event{Op: dictionary.OpInsert, Hit: true, Size: 1})
	m.Record(dictionary.Event{Op: dictionary.OpInsert, Hit: true, Size: 2})
	m.Record(dictionary.Event{Op: dictionary.OpSearch, Hit: false, Size: 2})
	m.Record(dictionary.Event{Op: dictionary.OpSave, Err: errors.New("disk full"), Size: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("insert", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("search", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("save", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Words))

	path := filepath.Join(t.TempDir(), "dictionary.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dictionary_words 2")
	assert.Contains(t, string(data), `dictionary_operations_total{op="insert",result="hit"} 2`)
}

func TestMetricsWithEngine(t *testing.T) {
	m := New()
	e := dictionary.New(nopStore{}, dictionary.WithRecorder(m))
	e.Insert("cat", "feline")
	e.Search("dog")
	assert.True(t, e.Delete("cat"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("delete", "hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Words))
}
