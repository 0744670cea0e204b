package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	inplacevector "github.com/wippyai/inplace-vector"
)

func main() {
	var (
		scriptPath  = flag.String("script", "", "Path to YAML op script")
		capacity    = flag.Int("cap", 8, "Vector capacity (4, 8, 16, 32, or 64)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*capacity); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ivrun -script <ops.yaml> [-cap N] [-v]")
		fmt.Fprintln(os.Stderr, "       ivrun -i [-cap N]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*scriptPath, *capacity, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, capacity int, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l
	}
	defer logger.Sync()
	inplacevector.SetLogger(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	s, err := parseScript(data)
	if err != nil {
		return err
	}
	if s.Capacity != 0 {
		capacity = s.Capacity
	}

	r, err := newRunner(capacity)
	if err != nil {
		return err
	}

	fmt.Printf("Capacity: %d\n", r.capacity())
	for i, op := range s.Ops {
		if err := r.apply(op); err != nil {
			// capacity and bounds errors are recoverable; report and keep going
			logger.Warn("operation failed",
				zap.Int("step", i),
				zap.String("op", op.Op),
				zap.Error(err),
			)
			fmt.Printf("%3d %-8s -> error: %v\n", i, op.Op, err)
			continue
		}
		fmt.Printf("%3d %-8s -> len %d  %v\n", i, op.Op, r.length(), r.state())
	}
	return nil
}
