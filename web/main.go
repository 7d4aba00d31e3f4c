package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	debug := flag.Bool("debug", false, "Log per-row render progress")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, core.NewDefaultLogger("web", *debug))

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
