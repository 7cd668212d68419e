package main

import (
	"os"

	"github.com/oncall-relay/oncall-relay/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
