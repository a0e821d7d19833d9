package health

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Dallionking/esports-stream/internal/config"
	"github.com/Dallionking/esports-stream/internal/i18n"
	"github.com/Dallionking/esports-stream/internal/stats"
)

// Minimum terminal size at which every panel has room for its border and
// a few lines of body.
const (
	minWidth  = 80
	minHeight = 24
)

// staleAfter is how old the feed may be before it is reported as stale.
const staleAfter = time.Minute

// registerChecks registers the checks across four categories.
func (c *Checker) registerChecks() {
	c.add("config-file", CategoryConfig, c.checkConfigFile)
	c.add("config-valid", CategoryConfig, c.checkConfigValid)
	c.add("language", CategoryConfig, c.checkLanguage)

	c.add("log-dir", CategoryFiles, c.checkLogDir)
	c.add("drops-history", CategoryFiles, c.checkDropsHistory)

	c.add("tty", CategoryTerminal, c.checkTTY)
	c.add("terminal-size", CategoryTerminal, c.checkTerminalSize)

	c.add("feed-file", CategoryFeed, c.checkFeedFile)
	c.add("feed-fresh", CategoryFeed, c.checkFeedFresh)
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfigFile(ctx context.Context) CheckResult {
	if _, err := os.Stat(c.paths.Config); err != nil {
		return CheckResult{Status: StatusWarn, Message: "config.json not found, using defaults"}
	}
	return CheckResult{Status: StatusPass, Message: c.paths.Config}
}

func (c *Checker) checkConfigValid(ctx context.Context) CheckResult {
	errs := config.Validate(c.cfg)
	if len(errs) == 0 {
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("valid (v%s)", c.cfg.Version)}
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return CheckResult{Status: StatusFail, Message: strings.Join(msgs, "; ")}
}

func (c *Checker) checkLanguage(ctx context.Context) CheckResult {
	tr, err := i18n.New(c.cfg.Language)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	return CheckResult{Status: StatusPass, Message: tr.Language()}
}

// ---------------------------------------------------------------------------
// File checks
// ---------------------------------------------------------------------------

func (c *Checker) checkLogDir(ctx context.Context) CheckResult {
	return writableDir(c.paths.Logs)
}

func (c *Checker) checkDropsHistory(ctx context.Context) CheckResult {
	if _, err := os.Stat(c.paths.DropsHistory); errors.Is(err, fs.ErrNotExist) {
		return CheckResult{Status: StatusWarn, Message: "not created yet"}
	}
	return writableDir(c.paths.DropsHistory)
}

// writableDir creates and removes a probe file in dir.
func writableDir(dir string) CheckResult {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("cannot create %s", dir)}
	}
	f, err := os.CreateTemp(dir, ".probe-")
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s not writable", dir)}
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return CheckResult{Status: StatusPass, Message: dir}
}

// ---------------------------------------------------------------------------
// Terminal checks
// ---------------------------------------------------------------------------

func (c *Checker) checkTTY(ctx context.Context) CheckResult {
	if c.term.IsTerminal() {
		return CheckResult{Status: StatusPass, Message: "stdout is a terminal"}
	}
	if c.cfg.Dashboard.ForceColor {
		return CheckResult{Status: StatusPass, Message: "not a terminal, colors forced"}
	}
	return CheckResult{Status: StatusWarn, Message: "stdout is not a terminal"}
}

func (c *Checker) checkTerminalSize(ctx context.Context) CheckResult {
	w, h := c.term.Size()
	msg := fmt.Sprintf("%dx%d", w, h)
	if w < minWidth || h < minHeight {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%s (dashboard wants %dx%d)", msg, minWidth, minHeight)}
	}
	return CheckResult{Status: StatusPass, Message: msg}
}

// ---------------------------------------------------------------------------
// Feed checks
// ---------------------------------------------------------------------------

func (c *Checker) checkFeedFile(ctx context.Context) CheckResult {
	s, err := stats.ReadFile(c.paths.Feed)
	if errors.Is(err, fs.ErrNotExist) {
		return CheckResult{Status: StatusWarn, Message: "no feed published yet"}
	}
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	status := s.Status
	if status == "" {
		status = "no status"
	}
	return CheckResult{Status: StatusPass, Message: status}
}

func (c *Checker) checkFeedFresh(ctx context.Context) CheckResult {
	info, err := os.Stat(c.paths.Feed)
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: "no feed published yet"}
	}
	age := c.now().Sub(info.ModTime()).Round(time.Second)
	if age > staleAfter {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("last update %s ago", age)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("updated %s ago", age)}
}
