package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/taskman/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
