// Command wordladder prints the shortest word ladders between two words.
//
//	wordladder --first=head --last=tail < /usr/share/dict/words
//	wordladder --first=cold --last=warm --dict words.txt --all --limit 5
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
