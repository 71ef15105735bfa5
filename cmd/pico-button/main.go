//go:build rp2040

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"bigredbutton-go/services/config"
	"bigredbutton-go/services/hal/devices/big_button"
	"bigredbutton-go/services/hal/provider"
	"bigredbutton-go/services/keymap"
	"bigredbutton-go/x/timex"
)

// Diagnostics console.
const (
	consoleUART = "uart0"
	consoleTX   = 0
	consoleRX   = 1
	consoleBaud = 115200
)

// consoleLog writes log lines to the UART console.
type consoleLog struct {
	w     io.Writer
	debug bool
}

func (l consoleLog) Infof(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\r\n", args...)
}

func (l consoleLog) Debugf(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(l.w, format+"\r\n", args...)
	}
}

func halt(msg string, err error) {
	println("[main]", msg+":", err.Error())
	for {
		time.Sleep(time.Second)
	}
}

func main() {
	// Allow USB to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot")

	cfg := config.Default()
	log := consoleLog{w: provider.OpenConsole(consoleUART, consoleTX, consoleRX, consoleBaud)}

	profiles, err := keymap.CompileAll(cfg.Profiles)
	if err != nil {
		halt("profiles", err)
	}

	kb := hidKeyboard{}
	dev, err := big_button.Open(provider.NewRP2Registry(), "button", cfg.Pins, timex.NewMono(), kb, cfg.Button)
	if err != nil {
		halt("open button", err)
	}
	defer dev.Close()
	println("[main] button ready, program", dev.ProgramIndex())

	svc := keymap.NewService(
		keymap.NewDispatcher(dev, kb, profiles, log),
		time.Duration(cfg.PollIntervalMs)*time.Millisecond,
		log,
	)
	_ = svc.Run(context.Background())
}
