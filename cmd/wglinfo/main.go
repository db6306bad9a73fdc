// SPDX-License-Identifier: Unlicense OR MIT

// Command wglinfo prints the OpenGL driver behind the WGL backend and
// optionally exercises surface presentation and context locking.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gogpu/gputypes"
	"golang.org/x/sync/errgroup"

	"gioui.org/wgl/gpu/wgl"
	"gioui.org/wgl/internal/gl"
)

var (
	debug      = flag.Bool("debug", false, "request a debug context")
	validation = flag.Bool("validation", false, "log OpenGL debug output")
	verbose    = flag.Bool("v", false, "log backend activity")
	listExts   = flag.Bool("ext", false, "list WGL and OpenGL extensions")
	width      = flag.Int("width", 640, "window width")
	height     = flag.Int("height", 480, "window height")
	mode       = flag.String("mode", "fifo", "present mode (fifo, mailbox)")
	frames     = flag.Int("frames", 0, "present this many frames to a window")
	stress     = flag.Int("stress", 0, "lock the shared context from this many goroutines")
)

// stressLocks is the number of locks taken by each stress goroutine.
const stressLocks = 100

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	// Windows belong to the thread that created them.
	runtime.LockOSThread()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "wglinfo: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(out io.Writer) error {
	presentMode, err := parseMode(*mode)
	if err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *width, *height)
	}
	var flags wgl.InstanceFlags
	if *debug {
		flags |= wgl.InstanceFlagDebug
	}
	if *validation {
		flags |= wgl.InstanceFlagValidation
	}
	flags = wgl.InstanceFlagsFromEnv(flags)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	wgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	inst, err := wgl.NewInstance(wgl.InstanceDescriptor{Name: "wglinfo", Flags: flags})
	if err != nil {
		return err
	}
	defer inst.Release()

	fmt.Fprintf(out, "profile:        %s\n", inst.Profile())
	fmt.Fprintf(out, "sRGB:           %v\n", inst.SupportsSRGB())
	fmt.Fprintf(out, "debug output:   %v\n", inst.DebugOutput())
	if *listExts {
		printExtensions(out, "WGL extensions", inst.WGLExtensions())
	}

	adapters := inst.EnumerateAdapters()
	if len(adapters) == 0 {
		return errors.New("no adapter: OpenGL 3.3 or newer is required")
	}
	a := adapters[0]
	defer a.Release()
	info := a.Info()
	fmt.Fprintf(out, "vendor:         %s\n", info.Vendor)
	fmt.Fprintf(out, "renderer:       %s\n", info.Renderer)
	fmt.Fprintf(out, "version:        %s\n", info.Version)
	fmt.Fprintf(out, "max texture:    %d\n", info.MaxTextureSize)
	if *listExts {
		printExtensions(out, "OpenGL extensions", info.Extensions)
	}

	if *stress > 0 {
		if err := stressContext(out, inst.Context(), *stress); err != nil {
			return err
		}
	}
	if *frames > 0 {
		return present(out, inst, a, presentMode)
	}
	return nil
}

func parseMode(s string) (wgl.PresentMode, error) {
	switch strings.ToLower(s) {
	case "fifo":
		return wgl.PresentModeFifo, nil
	case "mailbox":
		return wgl.PresentModeMailbox, nil
	default:
		return 0, fmt.Errorf("invalid -mode %s", s)
	}
}

func printExtensions(out io.Writer, title string, exts gl.ExtensionSet) {
	fmt.Fprintf(out, "%s (%d):\n", title, len(exts))
	for _, e := range exts.Sorted() {
		fmt.Fprintf(out, "    %s\n", e)
	}
}

// stressContext takes the shared context lock from several goroutines
// at once. A lock held too long panics inside the backend.
func stressContext(out io.Writer, ctx *wgl.AdapterContext, workers int) error {
	var g errgroup.Group
	start := time.Now()
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < stressLocks; j++ {
				err := ctx.Do(func(f wgl.Functions) error {
					if f.GetString(gl.VERSION) == "" {
						return errors.New("empty GL_VERSION")
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("stress: %w", err)
	}
	fmt.Fprintf(out, "stress:         %d goroutines x %d locks in %v\n", workers, stressLocks, time.Since(start))
	return nil
}

func present(out io.Writer, inst *wgl.Instance, a *wgl.Adapter, mode wgl.PresentMode) error {
	w, err := newWindow("wglinfo", *width, *height)
	if err != nil {
		return err
	}
	defer w.destroy()
	s, err := inst.CreateSurface(w.handle())
	if err != nil {
		return err
	}
	defer inst.DestroySurface(s)
	caps := a.SurfaceCapabilities(s)
	if caps == nil || len(caps.Formats) == 0 {
		return errors.New("window cannot be presented to")
	}
	dev := a.Open()
	defer dev.Release()

	cfg := &wgl.SurfaceConfiguration{
		Extent:      gputypes.Extent3D{Width: uint32(*width), Height: uint32(*height), DepthOrArrayLayers: 1},
		Format:      caps.Formats[0],
		PresentMode: mode,
	}
	if err := s.Configure(dev, cfg); err != nil {
		return err
	}
	start := time.Now()
	for i := 0; i < *frames; i++ {
		tex, err := s.AcquireTexture(time.Second)
		if err != nil {
			return err
		}
		if err := s.Present(dev, tex.Texture); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	fmt.Fprintf(out, "presented:      %d frames (%v) in %v, %.1f fps\n",
		*frames, mode, elapsed, float64(*frames)/elapsed.Seconds())
	return nil
}

const mainUsage = `Wglinfo prints the OpenGL driver behind the WGL backend.

Usage:

	wglinfo [flags]

The -ext flag lists the WGL extensions of the device context and the
OpenGL extensions of the shared context.

The -frames flag opens a window of -width by -height pixels, configures
a surface with the -mode present mode and presents the given number of
frames.

The -stress flag locks the shared context concurrently from the given
number of goroutines.

WGPU_DEBUG=1 and WGPU_VALIDATION=1 in the environment are equivalent to
-debug and -validation; a value of 0 overrides the flags.
`
