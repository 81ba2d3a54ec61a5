package main

import (
	"context"
	"log"

	"github.com/briannelson22/openweather/internal/cli"
)

func main() {
	if err := cli.New().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("weather: %s", err)
	}
}
