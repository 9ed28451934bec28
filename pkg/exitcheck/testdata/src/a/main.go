package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage")
		os.Exit(1) // want "calling os.Exit in main"
	}
	if os.Args[1] == "" {
		log.Fatal("empty name") // want "calling log.Fatal in main"
	}
	log.Println(os.Args[1], os.Args[2])
}
