package main

import (
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// newLogger returns a logger that writes to stderr and, unless logDir is
// empty, to logDir/log_<timestamp>.txt. The returned func closes the log file.
func newLogger(logDir string) (*log.Logger, func()) {
	if logDir == "" {
		return log.New(os.Stderr, "", log.LstdFlags), func() {}
	}

	err := os.MkdirAll(logDir, 0755)
	exception.PanicOnErr(err)
	name := filepath.Join(logDir, "log_"+time.Now().Format("2006_01_02_15_04_05")+".txt")
	file := fileio.EasyCreate(name)

	logger := log.New(io.MultiWriter(os.Stderr, file), "", log.LstdFlags)
	return logger, func() {
		err := file.Close()
		exception.PanicOnErr(err)
	}
}
