// Package logger exposes the one package-level logger seam shared by every
// layer of the numeric core. It defaults to a discard logger so importing
// this module as a library never forces log output on a caller who hasn't
// opted in; a host application calls SetLogger once, at startup.
package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

func Logger() log.Logger {
	return logger
}

func SetLogger(log log.Logger) {
	logger = log
}
