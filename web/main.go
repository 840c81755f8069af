package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-yart/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory containing YAML scenes")
	flag.Parse()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("yart render server")
	log.Printf("Try http://localhost:%d/api/render?scene=cornell&width=200&height=200", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
