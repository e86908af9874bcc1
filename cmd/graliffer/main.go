package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/graliffer/graliffer"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var stackLimit int
	var pointerDepth int
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&stackLimit, "stack-limit", 0, "cap value stack depth")
	flag.IntVar(&pointerDepth, "pointer-depth", graliffer.DefaultPointerDepth, "pointer chain resolution depth")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] program.yaml\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	snap, err := loadSnapshotFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	opts := []graliffer.Option{
		graliffer.WithSnapshot(snap),
		graliffer.WithInputReader(os.Stdin),
		graliffer.WithOutputWriter(os.Stdout),
		graliffer.WithStackLimit(stackLimit),
		graliffer.WithPointerDepth(pointerDepth),
	}
	if trace {
		opts = append(opts, graliffer.WithLogf(log.Printf))
	}
	eng := graliffer.New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := eng.Run(ctx); err != nil {
		var fault *graliffer.Fault
		if errors.As(err, &fault) {
			fmt.Fprintf(os.Stderr, "FAULT: %v\n", fault)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
}

func loadSnapshotFile(name string) (*graliffer.Snapshot, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return graliffer.LoadSnapshot(f)
}
