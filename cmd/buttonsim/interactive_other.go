//go:build !linux

package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"bigredbutton-go/errcode"
	"bigredbutton-go/types"
)

func runInteractive(cfg types.AppConfig, in *os.File, out io.Writer, l *log.Logger) error {
	return errcode.Wrap(errcode.Unsupported, "interactive", "needs a linux terminal", nil)
}
