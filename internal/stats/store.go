// Package stats holds the process-wide operational statistics that the
// agent's workers write and the dashboard reads.
//
// The store is a best-effort, eventually-consistent view. Each call is
// memory-safe on its own, but nothing ties two calls together: a snapshot
// taken while a worker is halfway through a multi-field update shows
// whatever had landed so far. Readers must format what they see without
// assuming cross-field invariants.
package stats

import "sync"

// StreamState classifies a tracked live stream.
type StreamState string

const (
	StreamWatching StreamState = "watching"
	StreamNoDrops  StreamState = "noDrops"
	StreamStuck    StreamState = "stuck"
	StreamOffline  StreamState = "offline"
)

// Stream is one live stream the agent is tracking.
type Stream struct {
	Region string      `json:"region"`
	Title  string      `json:"title"`
	State  StreamState `json:"state"`
}

// Stats is the raw record behind the dashboard.
type Stats struct {
	Status            string   `json:"status"`
	InitDrops         int      `json:"initDrops"`
	CurrentDrops      int      `json:"currentDrops"`
	InitWatchHours    float64  `json:"initWatchHours"`
	CurrentWatchHours float64  `json:"currentWatchHours"`
	LastCheckTime     string   `json:"lastCheckTime"`
	NextCheckTime     string   `json:"nextCheckTime"`
	NextMatchTime     string   `json:"nextMatchTime"`
	LiveRegions       []string `json:"liveRegions"`
	BriefInfo         []string `json:"briefInfo"`
	LiveInfo          []string `json:"liveInfo"`
	Streams           []Stream `json:"streams"`
	SessionDrops      []string `json:"sessionDrops"`
	TodayDrops        int      `json:"todayDrops"`
	Banner            []string `json:"banner"`
	DebugPort         int      `json:"debugPort"`
	WatchRegion       string   `json:"watchRegion"`
	Sleeping          bool     `json:"sleeping"`
}

// Clone returns a deep copy of s.
func (s Stats) Clone() Stats {
	s.LiveRegions = cloneStrings(s.LiveRegions)
	s.BriefInfo = cloneStrings(s.BriefInfo)
	s.LiveInfo = cloneStrings(s.LiveInfo)
	s.SessionDrops = cloneStrings(s.SessionDrops)
	s.Banner = cloneStrings(s.Banner)
	if s.Streams != nil {
		s.Streams = append([]Stream(nil), s.Streams...)
	}
	return s
}

// Store is the single shared Stats instance. The zero value is ready to use.
type Store struct {
	mu sync.Mutex
	s  Stats
}

// NewStore returns a store with zero/empty defaults.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a private copy of the current record.
func (st *Store) Snapshot() Stats {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Clone()
}

// Update applies fn to the live record. fn must not retain the pointer.
func (st *Store) Update(fn func(*Stats)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(&st.s)
}

// Replace swaps in an entire record, as published by an external worker.
func (st *Store) Replace(s Stats) {
	s = s.Clone()
	st.mu.Lock()
	st.s = s
	st.mu.Unlock()
}

// SetStatus sets the lifecycle phase label.
func (st *Store) SetStatus(status string) {
	st.Update(func(s *Stats) { s.Status = status })
}

// AddDrop records a drop won during this run.
func (st *Store) AddDrop(name string) {
	st.Update(func(s *Stats) {
		s.CurrentDrops++
		s.TodayDrops++
		s.SessionDrops = append(s.SessionDrops, name)
	})
}

// AddWatchHours adds h hours to the running watch total.
func (st *Store) AddWatchHours(h float64) {
	st.Update(func(s *Stats) { s.CurrentWatchHours += h })
}

// AppendBrief appends a line to the brief log.
func (st *Store) AppendBrief(line string) {
	st.Update(func(s *Stats) { s.BriefInfo = append(s.BriefInfo, line) })
}

// AppendLive appends a line to the live info log.
func (st *Store) AppendLive(line string) {
	st.Update(func(s *Stats) { s.LiveInfo = append(s.LiveInfo, line) })
}

// TrimBriefLog caps the rolling logs, keeping the newest briefMax brief
// lines and liveMax live lines. A non-positive limit leaves that log alone.
func (st *Store) TrimBriefLog(briefMax, liveMax int) {
	st.Update(func(s *Stats) {
		s.BriefInfo = keepLast(s.BriefInfo, briefMax)
		s.LiveInfo = keepLast(s.LiveInfo, liveMax)
	})
}

func keepLast(lines []string, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := make([]string, n)
	copy(out, lines[len(lines)-n:])
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
