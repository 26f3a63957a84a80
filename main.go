package main

import (
	"os"

	"github.com/portfolio-web/portfolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
