package main

import (
	"context"
	"fmt"
	"os"

	"github.com/launchbynttdata/pixman-version-gen/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "pvg: %v\n", err)
		os.Exit(1)
	}
}
