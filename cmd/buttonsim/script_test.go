package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"bigredbutton-go/errcode"
	"bigredbutton-go/services/config"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.Out = io.Discard
	return l
}

func newTestScript(t *testing.T) *script {
	t.Helper()
	sc, err := newScript(config.Default(), quietLogger())
	if err != nil {
		t.Fatalf("newScript: %v", err)
	}
	t.Cleanup(sc.s.close)
	return sc
}

func runLines(t *testing.T, sc *script, lines ...string) {
	t.Helper()
	if err := sc.run(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("script: %v", err)
	}
}

func TestScriptSingleHold(t *testing.T) {
	sc := newTestScript(t)
	runLines(t, sc,
		"# program 0 holds f13",
		"",
		"press",
		"wait 30",
		"release",
		"wait 10",
		"expect press release",
	)
	if got := fmt.Sprint(sc.s.keys.actions); got != "[hold f13 release]" {
		t.Fatalf("keys = %s", got)
	}
}

func TestScriptDualClick(t *testing.T) {
	sc := newTestScript(t)
	runLines(t, sc,
		"program 1",
		"wait 20",
		"expect",
		"press",
		"wait 100",
		"release",
		"wait 20",
		"expect click",
	)
	// The program change releases keys once before the click.
	if got := fmt.Sprint(sc.s.keys.actions); got != "[release tap f14]" {
		t.Fatalf("keys = %s", got)
	}
}

func TestScriptQuadDoubleClick(t *testing.T) {
	sc := newTestScript(t)
	runLines(t, sc,
		"program 2",
		"wait 10",
		"press",
		"wait 50",
		"release",
		"wait 50",
		"press",
		"wait 50",
		"release",
		"wait 10",
		"expect double_click",
		"wait 500",
		"expect",
	)
}

func TestScriptRawUsesHysteresis(t *testing.T) {
	sc := newTestScript(t)
	runLines(t, sc,
		"raw 30000", // between thresholds: still released
		"wait 20",
		"expect",
		"raw 1000",
		"wait 10",
		"raw 30000", // between thresholds: still pressed
		"wait 20",
		"expect press",
		"raw 60000",
		"wait 10",
		"expect release",
	)
}

func TestScriptKeepLit(t *testing.T) {
	sc := newTestScript(t)
	runLines(t, sc,
		"keeplit on",
		"wait 1000",
		"light",
	)
	if b := sc.s.light().Brightness; b < 0.85 || b > 1 {
		t.Fatalf("brightness with keep-lit = %v", b)
	}
	runLines(t, sc, "keeplit off", "wait 1000")
	if b := sc.s.light().Brightness; b > 0.01 {
		t.Fatalf("brightness after keep-lit off = %v", b)
	}
}

func TestScriptErrors(t *testing.T) {
	for _, c := range []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown", "jump", "unknown command"},
		{"wait arg", "wait 10\nwait soon", "line 2"},
		{"raw range", "raw 70000", "raw"},
		{"program range", "program 4", "program"},
		{"keeplit", "keeplit maybe", "on or off"},
		{"press args", "press hard", "argument"},
		{"expect", "press\nwait 10\nexpect click", "fired [press]"},
		{"quote", `press "`, ""},
	} {
		sc := newTestScript(t)
		err := sc.run(strings.NewReader(c.src))
		if !errors.Is(err, errcode.InvalidPayload) {
			t.Fatalf("%s: err = %v, want invalid_payload", c.name, err)
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Fatalf("%s: err = %q, want mention of %q", c.name, err, c.msg)
		}
	}
}
