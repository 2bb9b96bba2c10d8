package main

import (
	"flag"
	"fmt"
	"log"

	"grasslandslayer/render"
)

func main() {
	dir := flag.String("out", "sprites", "Directory to write the rasterized sprite sheets into")
	flag.Parse()

	written, err := render.ExportPNG(*dir)
	for _, path := range written {
		fmt.Println(path)
	}
	if err != nil {
		log.Fatal(err)
	}
}
