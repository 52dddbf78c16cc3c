package rendering

import (
	"fmt"

	"github.com/kevincpp/trigl/lib/utils"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
// Must be called after the context is made current and before any
// other gl call. Driver details get logged by Window.LogContextInfo.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	return nil
}

func SetClearColour(c utils.Colour) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
