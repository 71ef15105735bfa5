//go:build linux

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/term/termios"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"bigredbutton-go/errcode"
	"bigredbutton-go/types"
	"bigredbutton-go/x/timex"
)

// redrawEvery is how many polls pass between status line updates.
const redrawEvery = 5

func runInteractive(cfg types.AppConfig, in *os.File, out io.Writer, l *log.Logger) error {
	var orig unix.Termios
	if err := termios.Tcgetattr(in.Fd(), &orig); err != nil {
		return errcode.Wrap(errcode.Unsupported, "interactive", "stdin is not a terminal", err)
	}
	cbreak := orig
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(in.Fd(), termios.TCIFLUSH, &cbreak); err != nil {
		return errcode.Wrap(errcode.Error, "interactive", "cbreak", err)
	}
	defer termios.Tcsetattr(in.Fd(), termios.TCIFLUSH, &orig)

	s, err := newSim(cfg, timex.NewMono(), l)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The reader exits on the first byte after ctx ends; a blocked Read
	// cannot be interrupted.
	keys := make(chan byte, 8)
	go func() {
		defer close(keys)
		var b [1]byte
		for ctx.Err() == nil {
			if _, err := in.Read(b[:]); err != nil {
				return
			}
			select {
			case keys <- b[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintln(out, "space: toggle button  0-3: program  q: quit")
	tick := time.NewTicker(time.Duration(cfg.PollIntervalMs) * time.Millisecond)
	defer tick.Stop()

	down := false
	for n := 0; ; n++ {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case k, ok := <-keys:
			if !ok || k == 'q' {
				fmt.Fprintln(out)
				return nil
			}
			switch {
			case k == ' ':
				down = !down
				s.setButton(down)
			case k >= '0' && k < '0'+types.NumPrograms:
				s.setProgram(int(k - '0'))
			}
		case <-tick.C:
			if len(s.tick()) > 0 || n%redrawEvery == 0 {
				fmt.Fprint(out, "\r", status(s, down))
			}
		}
	}
}
