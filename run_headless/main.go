package main

import (
	"log"
	"os"

	"musou/headless"
)

func main() {
	if err := headless.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
