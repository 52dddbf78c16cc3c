package main

import (
	"flag"
	"log"
	"log/slog"
	"runtime"

	"github.com/kevincpp/trigl/lib/config"
	triglog "github.com/kevincpp/trigl/lib/log"
	"github.com/kevincpp/trigl/lib/renderer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "optional config file; the built-in defaults draw the classic orange triangle")
	flag.Parse()

	slog.SetDefault(slog.New(triglog.NewHandler(nil)))

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Parse(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	renderer.MakeWindowAndDraw(cfg, *cfgPath)
}
