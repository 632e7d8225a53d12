package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

// Fetches a bundle of cavern preset configs (YAML files) from a remote
// source into a local directory, from where they can be passed to
// cavegen -config.
func main() {
	var (
		src  = flag.String("src", "", "source URL (any go-getter scheme, e.g. git::https://... //presets)")
		name = flag.String("name", "default", "bundle name")
		out  = flag.String("o", "./presets", "output dir path")
	)
	flag.Parse()

	if *src == "" {
		fmt.Fprintln(os.Stderr, "source URL required")
		flag.Usage()
		os.Exit(2)
	}

	path := fmt.Sprintf("%s/%s", *out, *name)

	if err := os.RemoveAll(path); err != nil {
		log.Fatal(err)
	}

	log.Printf("start downloading presets to %s", path)

	if err := get.Get(path, *src); err != nil {
		log.Fatal(err)
	}

	log.Printf("done downloading presets to %s", path)
}
