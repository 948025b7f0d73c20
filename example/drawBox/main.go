package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"github.com/akmonengine/boxbuilder"
	"github.com/akmonengine/boxbuilder/config"
	"github.com/akmonengine/boxbuilder/scene"
	"github.com/fatih/color"
	"github.com/go-gl/mathgl/mgl64"
)

const controller boxbuilder.ControllerID = 1

// SetupBuilder creates a builder rendering into an in-memory scene, the user looking down -Z
func SetupBuilder(cfg config.Config, logger *slog.Logger) (*boxbuilder.Builder, *scene.Recorder) {
	recorder := scene.NewRecorder()
	view := mgl64.QuatRotate(-0.3, mgl64.Vec3{1, 0, 0})

	builder, err := boxbuilder.NewBuilder(cfg, boxbuilder.ViewerFunc(func() mgl64.Quat { return view }), recorder)
	if err != nil {
		panic(color.New(color.FgRed).Sprintf("Invalid config: %v", err))
	}
	builder.Logger = logger

	builder.Events.Subscribe(boxbuilder.BASE_COMMITTED, func(event boxbuilder.Event) {
		box := event.(boxbuilder.BaseCommittedEvent).Box
		color.Blue("Base drawn: %v  %.3f x %.3f", box.ID, box.Dimensions.X(), box.Dimensions.Z())
	})
	builder.Events.Subscribe(boxbuilder.BOX_COMMITTED, func(event boxbuilder.Event) {
		box := event.(boxbuilder.BoxCommittedEvent).Box
		color.Green("Box committed: %v", box.ID)
		color.Green("   centroid:   %v", box.Centroid)
		color.Green("   dimensions: %v", box.Dimensions)
		color.Green("   rotation:   %v", box.Orientation)
	})

	return builder, recorder
}

// DrawBase drags a base from one floor point to another
func DrawBase(builder *boxbuilder.Builder, from, to mgl64.Vec3, steps int) {
	floor := mgl64.Vec3{0, 1, 0}
	hand := boxbuilder.Pose{Position: mgl64.Vec3{0, 1.2, 0}, Rotation: mgl64.QuatIdent()}

	builder.PointerDown(boxbuilder.PointerEvent{
		Controller: controller,
		Pose:       hand,
		Hit:        &boxbuilder.SurfaceHit{Point: from, Normal: floor, HasNormal: true},
	})

	for i := 1; i <= steps; i++ {
		point := from.Add(to.Sub(from).Mul(float64(i) / float64(steps)))
		builder.PointerMove(boxbuilder.PointerEvent{
			Controller: controller,
			Pose:       hand,
			Hit:        &boxbuilder.SurfaceHit{Point: point, Normal: floor, HasNormal: true},
		})
	}

	builder.PointerUp(boxbuilder.PointerEvent{Controller: controller, Pose: hand})
}

// Extrude aims at the base from its side, then raises the hand (or tilts it) by lift
func Extrude(builder *boxbuilder.Builder, target mgl64.Vec3, lift float64, steps int) bool {
	// Aim just above the floor so the ray crosses the thin base
	start := boxbuilder.Pose{Position: target.Add(mgl64.Vec3{0, 0.002, 1}), Rotation: mgl64.QuatIdent()}

	if !builder.PointerDown(boxbuilder.PointerEvent{Controller: controller, Pose: start}) {
		return false
	}

	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		pose := boxbuilder.Pose{
			Position: start.Position.Add(mgl64.Vec3{0, lift * f, 0}),
			Rotation: mgl64.QuatRotate(math.Asin(math.Min(1, lift*f)), mgl64.Vec3{1, 0, 0}),
		}
		builder.PointerMove(boxbuilder.PointerEvent{Controller: controller, Pose: pose})
	}

	return builder.PointerUp(boxbuilder.PointerEvent{Controller: controller})
}

func main() {
	configPath := flag.String("config", "", "YAML or TOML config file")
	verbose := flag.Bool("v", false, "log every state transition")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			color.Red("Could not load %v: %v", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	color.Blue("Up axis: %v, extrusion: %v", cfg.UpAxisPolicy, cfg.ExtrusionStrategy)
	builder, recorder := SetupBuilder(cfg, logger)

	from := mgl64.Vec3{-0.4, 0, -1.5}
	to := mgl64.Vec3{0.4, 0, -2.1}
	DrawBase(builder, from, to, 10)

	base := builder.Boxes()[0]
	if !Extrude(builder, base.BottomCenter, 0.6, 10) {
		color.Red("The pointer missed the base")
		os.Exit(1)
	}

	for _, node := range recorder.Nodes() {
		color.Cyan("Scene node %d: %v at %v, size %v (%d updates)", node.Handle, node.State, node.Position, node.Dimensions, node.Updates)
	}
}
