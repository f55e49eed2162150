package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/goshaderview/glfwcontext"
	"github.com/richinsley/goshaderview/options"
	"github.com/richinsley/goshaderview/renderer"
	"github.com/richinsley/goshaderview/shader"
	"github.com/richinsley/goshaderview/viewer"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Shader preview with live parameters (M: panel, R: record, Esc: quit)")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := opts.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	spec, err := shader.Resolve(*opts.ShaderPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	sources, err := spec.LoadSources(os.ReadFile)
	if err != nil {
		log.Fatalf("Failed to load shader sources: %v", err)
	}

	// parameter traces are logged at debug level and hidden by the default handler
	viewer.SetLogger(slog.Default())

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(windowWidth, windowHeight, "goshaderview - "+spec.SourcePath)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx, spec, sources)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	width, height := ctx.GetFramebufferSize()
	v := viewer.New(viewer.Config{Width: width, Height: height, Clock: ctx.Time})
	ctx.SetInputHandler(v)

	log.Println("Starting interactive render loop...")
	r.Run(v)
}
