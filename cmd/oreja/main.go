package main

import (
	"fmt"
	"os"

	"oreja/cmd/oreja/cmd"
	"oreja/internal/app"
	"oreja/internal/config"
)

func main() {
	// A broken .env is reported but does not stop the tool; the key may
	// still come from the environment or a credential file.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd.Execute(app.InitializeRunner)
}
