// Command vtdemo feeds a byte stream (typically piped in, e.g. via
// `script -q -c ... | vtdemo`) through the core engine and prints the
// resulting screen. It spawns nothing and owns no PTY — sizing and
// process plumbing are the caller's concern (spec.md §1's explicit
// Non-goals), mirrored here the way internal/gopyte/cli/
// cmd_pty_demo.go uses golang.org/x/term only for its GetSize call.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	vterm "vtengine/internal/term"
	"vtengine/internal/vtparse"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML terminal config")
	cols := flag.Int("cols", 0, "override column count")
	rows := flag.Int("rows", 0, "override row count")
	flag.Parse()

	cfg := vterm.DefaultConfig()
	if *configPath != "" {
		loaded, err := vterm.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("vtdemo: loading config: %v", err)
		}
		cfg = loaded
	} else if c, r, err := term.GetSize(int(os.Stdout.Fd())); err == nil && c > 0 && r > 0 {
		cfg.Cols, cfg.Rows = c, r
	}
	if *cols > 0 {
		cfg.Cols = *cols
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}

	t := vterm.NewWithConfig(cfg)
	defer t.Close()

	stream := vtparse.NewStream(t)

	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			stream.Feed(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("vtdemo: reading stdin: %v", err)
		}
	}

	fmt.Println(t.PlainString())
}
