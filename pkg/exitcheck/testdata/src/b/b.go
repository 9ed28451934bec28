package b

import (
	"log"
	"os"
)

func Exit(code int) {
	log.Println("exit", code)
	os.Exit(code)
}
