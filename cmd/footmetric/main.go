package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"footmetric/internal/config"
	"footmetric/internal/pipeline"
	"footmetric/internal/server"
	"footmetric/internal/store"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("footmetric %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("footmetric - foot size measurement service")
			fmt.Println()
			fmt.Println("Usage: footmetric [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  FOOTMETRIC_PORT                 HTTP port (default 8080)")
			fmt.Println("  FOOTMETRIC_UPLOAD_DIR           Directory for persisted uploads (default: disabled)")
			fmt.Println("  FOOTMETRIC_CONVERSION_FACTOR    Centimeters per pixel (default 0.2)")
			fmt.Println("  FOOTMETRIC_CANNY_LOW            Low edge threshold (default 50; 0/0 selects auto)")
			fmt.Println("  FOOTMETRIC_CANNY_HIGH           High edge threshold (default 150)")
			fmt.Println("  FOOTMETRIC_MAX_DIMENSION        Downscale cap for the longest side (default 2000)")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pipe, err := pipeline.New(cfg.Pipeline)
	if err != nil {
		log.Fatalf("Invalid pipeline configuration: %v", err)
	}

	var uploads *store.Store
	if cfg.UploadDir != "" {
		uploads, err = store.New(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to prepare upload directory: %v", err)
		}
		log.Printf("Persisting uploads to %s", cfg.UploadDir)
	}

	srv := server.New(pipe, uploads)
	addr := ":" + cfg.Port
	log.Printf("footmetric %s listening on %s (factor %g cm/px)", Version, addr, cfg.Pipeline.ConversionFactor)
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
