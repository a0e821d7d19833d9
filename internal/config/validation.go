package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// SupportedLanguages lists the language codes with built-in text tables.
var SupportedLanguages = []string{"zh_CN", "zh_TW", "en_US"}

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Config for completeness and consistency. It returns a
// slice of all discovered issues rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	// --- Required fields ---
	if strings.TrimSpace(cfg.NickName) == "" {
		errs = append(errs, ValidationError{Field: "nickName", Message: "required field is empty"})
	}

	// --- Mode ---
	switch strings.ToLower(cfg.Mode) {
	case ModeNormal, ModeSafe:
	default:
		errs = append(errs, ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("must be %q or %q, got %q", ModeNormal, ModeSafe, cfg.Mode),
		})
	}

	if cfg.MaxStream <= 0 {
		errs = append(errs, ValidationError{
			Field:   "maxStream",
			Message: fmt.Sprintf("must be > 0, got %d", cfg.MaxStream),
		})
	}

	// --- Language ---
	known := false
	for _, lang := range SupportedLanguages {
		if strings.EqualFold(lang, cfg.Language) {
			known = true
			break
		}
	}
	if !known {
		errs = append(errs, ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("unsupported language %q; available: %v", cfg.Language, SupportedLanguages),
		})
	}

	// --- Dashboard ---
	if cfg.Dashboard.Interval <= 0 {
		errs = append(errs, ValidationError{
			Field:   "dashboard.interval",
			Message: fmt.Sprintf("must be > 0, got %s", cfg.Dashboard.Interval),
		})
	}
	if cfg.Dashboard.BriefLogLines <= 0 {
		errs = append(errs, ValidationError{
			Field:   "dashboard.briefLogLines",
			Message: fmt.Sprintf("must be > 0, got %d", cfg.Dashboard.BriefLogLines),
		})
	}
	if cfg.Dashboard.LiveLogLines <= 0 {
		errs = append(errs, ValidationError{
			Field:   "dashboard.liveLogLines",
			Message: fmt.Sprintf("must be > 0, got %d", cfg.Dashboard.LiveLogLines),
		})
	}

	// --- Feed ---
	if cfg.Feed.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "feed.debounce",
			Message: fmt.Sprintf("must be >= 0, got %s", cfg.Feed.Debounce),
		})
	}

	// --- Logging ---
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: err.Error(),
		})
	}

	return errs
}
