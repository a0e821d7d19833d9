package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dallionking/esports-stream/internal/stats"
)

// Printer writes a line to the shared terminal, taking RefreshLock.
type Printer interface {
	Println(a ...any)
}

// Texts looks up plain localized text.
type Texts interface {
	Log(key string) string
}

var demoStreams = []stats.Stream{
	{Region: "LPL", Title: "BLG vs JDG", State: stats.StreamWatching},
	{Region: "LCK", Title: "T1 vs GEN", State: stats.StreamWatching},
	{Region: "LEC", Title: "G2 vs FNC", State: stats.StreamOffline},
}

// demoPhases is the status sequence, one per step; the last entry repeats.
var demoPhases = []string{"phase.loggingIn", "phase.initializing", "phase.checking", "phase.watching"}

// Demo is a stand-in worker that makes the dashboard move without a browser.
type Demo struct {
	store    *stats.Store
	out      Printer
	texts    Texts
	interval time.Duration
	now      func() time.Time
	log      logrus.FieldLogger
}

// NewDemo returns a demo worker stepping every interval.
func NewDemo(store *stats.Store, out Printer, texts Texts, interval time.Duration, log logrus.FieldLogger) *Demo {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Demo{
		store:    store,
		out:      out,
		texts:    texts,
		interval: interval,
		now:      time.Now,
		log:      log.WithField("module", "demo"),
	}
}

// Seed sets the baseline counters a real worker would read at login.
func (d *Demo) Seed() {
	d.store.Update(func(s *stats.Stats) {
		s.InitDrops, s.CurrentDrops = 12, 12
		s.InitWatchHours, s.CurrentWatchHours = 35.5, 35.5
		s.Banner = []string{"Worlds", "Swiss Stage", "Day 3"}
		s.DebugPort = 9222
		s.WatchRegion = "CN"
		s.Streams = append([]stats.Stream(nil), demoStreams...)
	})
}

// Step advances the simulation by one tick.
func (d *Demo) Step(i int) {
	now := d.now()
	phase := d.texts.Log(demoPhases[min(i, len(demoPhases)-1)])

	d.store.Update(func(s *stats.Stats) {
		s.Status = phase
		s.LastCheckTime = now.Format("15:04:05")
		s.NextCheckTime = now.Add(4 * d.interval).Format("15:04:05")
		s.NextMatchTime = now.Add(2 * time.Hour).Format("01-02 15:04")
		s.LiveRegions = s.LiveRegions[:0]
		for _, st := range s.Streams {
			if st.State != stats.StreamOffline {
				s.LiveRegions = append(s.LiveRegions, st.Region)
			}
		}
		// Every fifth tick the LCK stream goes quiet.
		if len(s.Streams) > 1 {
			s.Streams[1].State = stats.StreamWatching
			if i%5 == 4 {
				s.Streams[1].State = stats.StreamNoDrops
			}
		}
	})

	d.store.AppendBrief(fmt.Sprintf("%s %s", now.Format("15:04:05"), d.texts.Log("demo.check")))
	for _, st := range demoStreams {
		if st.State != stats.StreamOffline {
			d.store.AppendLive(fmt.Sprintf("%s | %s", st.Region, st.Title))
		}
	}

	if i < len(demoPhases)-1 {
		return
	}
	d.store.AddWatchHours(0.05)
	if i%4 == 3 {
		drop := fmt.Sprintf("%s capsule #%d", demoStreams[i%2].Region, i)
		d.store.AddDrop(drop)
		d.log.WithField("drop", drop).Info("drop received")
		d.out.Println(d.texts.Log("demo.drop") + ": " + drop)
	}
}

// Run steps until ctx is cancelled.
func (d *Demo) Run(ctx context.Context) error {
	d.Seed()
	d.out.Println(d.texts.Log("demo.login"))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		d.Step(i)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
