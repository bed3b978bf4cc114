/*
gaur applies set algebra to sets given on the command line.

	gaur union '{1,2,3}' '{2,3,4}'
	gaur --sets sets.yaml subset primes odds
*/
package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	log, err := newLogger(zapcore.InfoLevel)
	if err != nil {
		os.Exit(1)
	}
	a := &app{log: log}
	err = a.rootCommand().Execute()
	if err != nil {
		a.log.Error("gaur failed", zap.Error(err))
	}
	_ = a.log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}
