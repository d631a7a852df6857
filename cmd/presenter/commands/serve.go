package commands

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"pdf-presenter/internal/config"
	"pdf-presenter/internal/document"
	"pdf-presenter/internal/handlers"
	"pdf-presenter/internal/presenter"
	"pdf-presenter/internal/printer"
	"pdf-presenter/internal/services"
	"pdf-presenter/internal/slides"
)

var (
	serveHost       string
	servePort       string
	serveSlides     string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve <file.pdf>",
	Short: "Present a PDF on two synchronized browser views",
	Long: `Open a PDF and serve the audience and presenter views.

Examples:
  # Interleaved slides/notes (pages 1,3,5... face the audience)
  presenter serve talk.pdf

  # Pages 1, 4 and 9 face the audience; pages in between are notes
  presenter serve talk.pdf --slides 1,4,9`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (default 127.0.0.1)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (default 8080)")
	serveCmd.Flags().StringVar(&serveSlides, "slides", "", "Comma-separated 1-indexed audience page numbers")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to presenter.yml")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return printer.Error("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	// The --slides flag wins over the config file.
	rawSlides := cfg.Slides.AudiencePages
	if serveSlides != "" {
		rawSlides = serveSlides
	}
	audiencePages, err := config.ParsePageList(rawSlides)
	if err != nil {
		return printer.Error("Invalid slide list: %v", err)
	}

	// Open document
	doc, err := document.Open(args[0])
	if err != nil {
		return printer.Error("Failed to open PDF: %v", err)
	}
	totalPages := doc.PageCount()
	if len(audiencePages) == 0 && totalPages < 2 {
		printer.Warning("PDF has less than 2 pages. Presenter notes will be empty.\n")
	}

	// Build the slide sequence
	deck, err := slides.Build(totalPages, audiencePages)
	if err != nil {
		return printer.Error("Failed to build slide map: %v", err)
	}

	// Initialize services
	wsService := services.NewWebSocketService()
	controller, err := presenter.New(deck, wsService)
	if err != nil {
		return printer.Error("Failed to start presentation: %v", err)
	}
	wsService.SetController(controller)
	go wsService.Run()

	// Initialize handlers
	wsHandler := handlers.NewWebSocketHandler(wsService)
	docHandler := handlers.NewDocumentHandler(doc, doc.Name(), doc.Path(), len(deck))
	staticHandler := handlers.NewStaticHandler()

	// Setup routes
	router := handlers.SetupRoutes(wsHandler, docHandler, staticHandler)

	// Configure server
	server := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}

	printSummary(doc.Name(), totalPages, len(deck), cfg)

	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{
			MinVersion: tlsVersion(cfg.TLS.MinVersion),
		}
		log.Printf("Starting HTTPS server on %s", server.Addr)
		return server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	}
	log.Printf("Starting HTTP server on %s", server.Addr)
	return server.ListenAndServe()
}

func printSummary(name string, totalPages, slideCount int, cfg *config.Config) {
	scheme := "http"
	if cfg.TLS.Enabled {
		scheme = "https"
	}
	base := fmt.Sprintf("%s://%s:%s", scheme, cfg.Server.Host, cfg.Server.Port)

	printer.Success("Loaded: %s\n", name)
	printer.Info("Total pages: %d, Slides: %d\n\n", totalPages, slideCount)
	printer.Heading("Open the views:\n")
	printer.Info("  Audience:  %s/audience\n", base)
	printer.Info("  Presenter: %s/presenter\n\n", base)
	printer.Heading("Controls (in either view):\n")
	printer.Info("  Right/Space/PgDn - Next\n")
	printer.Info("  Left/PgUp        - Previous\n")
	printer.Info("  Home / End       - First / last slide\n")
	printer.Info("  Number+Enter     - Go to slide number\n")
	printer.Info("  B                - Blank/unblank audience screen\n")
	printer.Info("  H                - Show help (presenter view)\n")
	printer.Info("  F11              - Toggle fullscreen\n\n")
	printer.Info("Move the audience view to the projector and press F11.\n")
}

// tlsVersion converts a config string to the tls.Version constant.
func tlsVersion(version string) uint16 {
	switch version {
	case "1.0":
		return tls.VersionTLS10
	case "1.1":
		return tls.VersionTLS11
	case "1.2":
		return tls.VersionTLS12
	case "1.3":
		return tls.VersionTLS13
	default:
		return tls.VersionTLS12
	}
}
