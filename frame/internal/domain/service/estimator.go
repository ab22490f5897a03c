// Package service provides optional WidthEstimator implementations
// beyond the trivial default the frame's domain model ships with.
package service

import (
	"github.com/mattn/go-runewidth"

	"github.com/sile/tuinix/frame/internal/domain/model"
)

// RuneWidthEstimator estimates display width using
// github.com/mattn/go-runewidth's East-Asian-width tables, for
// applications that need CJK and emoji columns to come out right.
//
// It deliberately does not perform grapheme-cluster segmentation
// (combining marks are counted as their own, usually zero-width,
// codepoints) — that's an explicit non-goal of the width estimator
// interface; applications needing full grapheme correctness must
// pre-segment text themselves before writing it to a Frame.
type RuneWidthEstimator struct {
	// EastAsianWidth, when true, treats ambiguous-width runes as width
	// 2 (appropriate for CJK locales). Mirrors runewidth.Condition's
	// EastAsianWidth field.
	EastAsianWidth bool
}

// NewRuneWidthEstimator returns a RuneWidthEstimator using default
// (non-CJK-locale) ambiguous-width handling.
func NewRuneWidthEstimator() RuneWidthEstimator {
	return RuneWidthEstimator{}
}

// Width implements model.WidthEstimator.
func (e RuneWidthEstimator) Width(r rune) int {
	cond := runewidth.Condition{EastAsianWidth: e.EastAsianWidth}
	return cond.RuneWidth(r)
}

var _ model.WidthEstimator = RuneWidthEstimator{}
