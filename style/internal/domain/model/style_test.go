package model

import (
	"testing"

	"github.com/sile/tuinix/style/internal/domain/value"
)

func TestResetIsZeroValue(t *testing.T) {
	if Reset != (Style{}) {
		t.Fatal("Reset must equal the zero value")
	}
	if !New().IsEmpty() {
		t.Fatal("New() must be empty")
	}
}

func TestBuildersAreImmutable(t *testing.T) {
	base := New()
	bold := base.Bold()

	if base.IsBold() {
		t.Error("builder must not mutate the receiver")
	}
	if !bold.IsBold() {
		t.Error("Bold() must set the bold attribute on the returned value")
	}
}

func TestFgBgColorValue(t *testing.T) {
	s := New().FgColor(value.Red)
	fg, ok := s.FgColorValue()
	if !ok || fg != value.Red {
		t.Errorf("FgColorValue() = (%v, %v), want (Red, true)", fg, ok)
	}
	if _, ok := s.BgColorValue(); ok {
		t.Error("BgColorValue should report unset when no BgColor() call was made")
	}
}

func TestEqualsAndIsEmpty(t *testing.T) {
	a := New().Bold().FgColor(value.Blue)
	b := New().Bold().FgColor(value.Blue)
	c := New().Bold()

	if !a.Equals(b) {
		t.Error("identically-built styles must be equal")
	}
	if a.Equals(c) {
		t.Error("styles differing in fg color must not be equal")
	}
	if a.IsEmpty() {
		t.Error("a non-default style must not report IsEmpty")
	}
}
