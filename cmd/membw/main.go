package main

import (
	"log"
	"os"

	"github.com/cli-tools/memory-bandwidth-demo/internal/membench"
)

func main() {
	log.SetFlags(0)
	if err := membench.Run(membench.DefaultConfig(), os.Stdout, os.Stderr); err != nil {
		log.Fatalf("membw: %v", err)
	}
}
