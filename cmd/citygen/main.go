package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ditharaavindi/city-generator/internal/server"
	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/scene"
)

// Viewport defaults shared by every command.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "citygen",
		Short: "Procedural 2D/3D city generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a city and emit the scene as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(projectArg(args), width, height)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultWidth, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "viewport height in pixels")
	return cmd
}

func renderCmd() *cobra.Command {
	var width, height int
	var out, format, view string

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Generate a city and render it to an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(projectArg(args), width, height, out, format, view)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultWidth, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "viewport height in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "city.png", "output file path")
	cmd.Flags().StringVar(&format, "format", "png", "output format: png or svg")
	cmd.Flags().StringVar(&view, "view", "", "projection override: 2d or 3d (default from config)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a generation config without generating",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(projectArg(args))
		},
	}
}

func serveCmd() *cobra.Command {
	var width, height, port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with interactive regeneration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(projectArg(args))
			if err != nil {
				return err
			}
			srv := server.New(cfg, scene.NewGenerator(width, height), port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultWidth, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "viewport height in pixels")
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}

// projectArg returns the optional project path argument, or "" to use the
// default configuration.
func projectArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// loadConfig loads city.yaml from the project directory, or the defaults
// when no project is given.
func loadConfig(projectPath string) (*config.Config, error) {
	if projectPath == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.LoadProject(projectPath)
}
