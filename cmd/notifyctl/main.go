package main

import (
	"fmt"
	"os"

	"notifyd/internal/notifyctl"
)

func main() {
	if err := notifyctl.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
