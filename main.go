package main

import (
	"os"

	"github.com/throwback-posts/throwback-posts/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
