package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Sites   []headlines.Site
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out         string        `short:"o" default:"." help:"Directory for output files"`
	Delimiter   string        `short:"d" default:"," help:"Field delimiter for output files"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per site"`
	Concurrency int           `short:"c" default:"1" help:"Number of sites processed at once"`
	Sites       string        `short:"s" env:"HEADLINES_SITES" help:"YAML site registry (default: built-in sites)"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for page requests"`
	Preview     bool          `short:"p" help:"Print headlines instead of writing files"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
