// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/cli"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/logger"
	verpkg "github.com/H0llyW00dzZ/jsonrpcbase/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130 // 128 + SIGINT
)

// shutdownGrace is how long an interrupted command may take to return.
const shutdownGrace = 100 * time.Millisecond

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, log, func(ctx context.Context) error {
		return cli.Execute(ctx, version, log)
	})
	stop()

	os.Exit(code)
}

// run executes command and maps its outcome to an exit code. When ctx is
// cancelled first, command gets shutdownGrace to return before run gives up.
func run(ctx context.Context, log logger.Logger, command func(context.Context) error) int {
	done := make(chan error, 1)
	go func() {
		done <- command(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("jsonrpcbase: %v", err)
			return exitFailure
		}
		return exitOK
	case <-ctx.Done():
		log.Println("Interrupted, abandoning the current payload.")
		select {
		case <-done:
		case <-time.After(shutdownGrace):
		}
		return exitInterrupted
	}
}
