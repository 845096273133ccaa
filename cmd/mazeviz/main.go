package main

import (
	"flag"
	"log"
	"os"

	"mazeviz/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	a, err := app.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
