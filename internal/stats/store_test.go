package stats

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreIsEmpty(t *testing.T) {
	s := NewStore().Snapshot()
	assert.Equal(t, Stats{}, s)
}

func TestSnapshotIsIsolated(t *testing.T) {
	st := NewStore()
	st.AppendBrief("first")

	snap := st.Snapshot()
	snap.BriefInfo[0] = "mutated"
	st.AppendBrief("second")

	assert.Equal(t, []string{"first", "second"}, st.Snapshot().BriefInfo)
	assert.Len(t, snap.BriefInfo, 1)
}

func TestAddDropUpdatesCounters(t *testing.T) {
	st := NewStore()
	st.Update(func(s *Stats) { s.InitDrops, s.CurrentDrops = 5, 5 })

	st.AddDrop("LPL capsule")
	st.AddDrop("LCK capsule")

	s := st.Snapshot()
	assert.Equal(t, 7, s.CurrentDrops)
	assert.Equal(t, 2, s.TodayDrops)
	assert.Equal(t, []string{"LPL capsule", "LCK capsule"}, s.SessionDrops)
}

func TestTrimBriefLogKeepsNewest(t *testing.T) {
	st := NewStore()
	for i := 0; i < 15; i++ {
		st.AppendBrief(fmt.Sprintf("brief %d", i))
		st.AppendLive(fmt.Sprintf("live %d", i))
	}

	st.TrimBriefLog(10, 3)

	s := st.Snapshot()
	require.Len(t, s.BriefInfo, 10)
	assert.Equal(t, "brief 5", s.BriefInfo[0])
	assert.Equal(t, "brief 14", s.BriefInfo[9])
	assert.Equal(t, []string{"live 12", "live 13", "live 14"}, s.LiveInfo)
}

func TestTrimBriefLogIgnoresNonPositiveLimit(t *testing.T) {
	st := NewStore()
	st.AppendBrief("a")
	st.AppendBrief("b")

	st.TrimBriefLog(0, -1)
	assert.Len(t, st.Snapshot().BriefInfo, 2)
}

func TestConcurrentWritersAndReader(t *testing.T) {
	st := NewStore()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				st.AppendBrief(fmt.Sprintf("w%d-%d", w, i))
				st.AddWatchHours(0.01)
				st.SetStatus("watching")
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = st.Snapshot()
			st.TrimBriefLog(10, 10)
		}
	}()

	wg.Wait()
	<-done
	assert.LessOrEqual(t, len(st.Snapshot().BriefInfo), 8*200)
}

func TestFeedRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	in := Stats{
		Status:       "watching",
		InitDrops:    5,
		CurrentDrops: 8,
		LiveRegions:  []string{"LPL", "LCK"},
		Streams:      []Stream{{Region: "LPL", Title: "BLG vs JDG", State: StreamWatching}},
	}

	require.NoError(t, WriteFile(path, in))
	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files left behind")
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
