package main

import (
	"log"

	"legendstats/pkg/config"
	"legendstats/scheduler/jobs"
)

// One shot asset cache refresh, handy for deploys that can't wait for
// the scheduled run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	if err := jobs.RevalidateAssets(cfg); err != nil {
		log.Fatalf("Couldn't revalidate the asset caches: %v", err)
	}
}
