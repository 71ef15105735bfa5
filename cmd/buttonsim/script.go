package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	log "github.com/sirupsen/logrus"

	"bigredbutton-go/errcode"
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

// script drives a sim on a manual clock, one poll interval per tick.
//
//	press | release        drive the button fully down / up
//	raw N                  drive the button line to N (0..65535)
//	wait MS                run polls for MS milliseconds
//	program N              set the selector to 0..3
//	keeplit on|off         override keep-lit for the current program
//	light                  log the indicator state
//	expect [TRIGGER...]    check what fired since the last expect
type script struct {
	s    *sim
	clk  *timex.Manual
	seen []types.Trigger
}

func newScript(cfg types.AppConfig, l *log.Logger) (*script, error) {
	clk := timex.NewManual(0)
	s, err := newSim(cfg, clk, l)
	if err != nil {
		return nil, err
	}
	return &script{s: s, clk: clk}, nil
}

func runScript(cfg types.AppConfig, r io.Reader, l *log.Logger) error {
	sc, err := newScript(cfg, l)
	if err != nil {
		return err
	}
	defer sc.s.close()
	return sc.run(r)
}

func (sc *script) run(r io.Reader) error {
	in := bufio.NewScanner(r)
	for n := 1; in.Scan(); n++ {
		if err := sc.exec(in.Text()); err != nil {
			return errcode.Wrap(errcode.Of(err), "script", "line "+strconv.Itoa(n), err)
		}
	}
	return in.Err()
}

func (sc *script) exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return errcode.Wrap(errcode.InvalidPayload, "", "", err)
	}
	if len(args) == 0 {
		return nil // blank or comment
	}
	cmd, args := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "press", "release":
		if err := argc(cmd, args, 0); err != nil {
			return err
		}
		sc.s.setButton(cmd == "press")
	case "raw":
		v, err := intArg(cmd, args, 0, 0xFFFF)
		if err != nil {
			return err
		}
		sc.s.button().Drive(uint16(v))
	case "wait":
		ms, err := intArg(cmd, args, 0, 1<<31-1)
		if err != nil {
			return err
		}
		sc.wait(uint32(ms))
	case "program":
		v, err := intArg(cmd, args, 0, types.NumPrograms-1)
		if err != nil {
			return err
		}
		sc.s.setProgram(v)
	case "keeplit":
		if err := argc(cmd, args, 1); err != nil {
			return err
		}
		var on bool
		switch strings.ToLower(args[0]) {
		case "on":
			on = true
		case "off":
		default:
			return badArg(cmd, "want on or off, got "+args[0])
		}
		sc.s.disp.SetKeepLit(sc.s.dev.ProgramIndex(), on)
	case "light":
		if err := argc(cmd, args, 0); err != nil {
			return err
		}
		lv := sc.s.light()
		sc.s.log.WithFields(log.Fields{
			"t":          sc.clk.NowMs(),
			"brightness": strconv.FormatFloat(lv.Brightness, 'f', 3, 64),
			"duty":       lv.Duty,
			"override":   sc.s.dev.Override().String(),
		}).Info("light")
	case "expect":
		got := sc.seen
		sc.seen = nil
		if fmt.Sprint(got) != fmt.Sprint(toTriggers(args)) {
			return badArg(cmd, fmt.Sprintf("fired %v, want %v", got, args))
		}
	default:
		return badArg(cmd, "unknown command")
	}
	return nil
}

// wait runs ceil(ms/interval) polls.
func (sc *script) wait(ms uint32) {
	step := sc.s.cfg.PollIntervalMs
	for n := (ms + step - 1) / step; n > 0; n-- {
		sc.clk.Advance(step)
		sc.seen = append(sc.seen, sc.s.tick()...)
	}
}

func toTriggers(args []string) []types.Trigger {
	out := make([]types.Trigger, 0, len(args))
	for _, a := range args {
		out = append(out, types.Trigger(strings.ToLower(a)))
	}
	return out
}

func badArg(cmd, msg string) error {
	return errcode.Wrap(errcode.InvalidPayload, cmd, msg, nil)
}

func argc(cmd string, args []string, n int) error {
	if len(args) != n {
		return badArg(cmd, fmt.Sprintf("want %d argument(s), got %d", n, len(args)))
	}
	return nil
}

func intArg(cmd string, args []string, lo, hi int) (int, error) {
	if err := argc(cmd, args, 1); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < lo || v > hi {
		return 0, badArg(cmd, fmt.Sprintf("want an integer in [%d,%d], got %q", lo, hi, args[0]))
	}
	return v, nil
}
