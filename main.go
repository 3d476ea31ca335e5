package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes with a recursive Whitted-style ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}

	scenesDir := cli.StringFlag{
		Name:  "scenes-dir",
		Value: "scenes",
		Usage: "directory searched for scene files given by name",
	}
	renderFlags := []cli.Flag{
		scenesDir,
		cli.IntFlag{
			Name:  "width",
			Usage: "image width; overrides the scene file",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "image height; overrides the scene file",
		},
		cli.IntFlag{
			Name:  "supersample, s",
			Usage: "rays per pixel along each axis; overrides the scene file",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Usage: "deepest reflection that is still shaded; overrides the scene file",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "output image (.png, .webp or .tga); defaults to output/<scene>/render_<timestamp>.png",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image",
			Description: `
Render a built-in scene, a scene file from the scenes directory given by its name,
or a .toml scene file given by path.`,
			ArgsUsage: "scene",
			Flags:     renderFlags,
			Action:    renderCommand,
		},
		{
			Name:  "watch",
			Usage: "re-render a scene file whenever it or one of its models changes",
			Description: `
Render a scene file, then watch it and every model file it references. Each change
triggers a new render into the same output file. Stop with Ctrl-C.`,
			ArgsUsage: "scene",
			Flags:     renderFlags,
			Action:    watchCommand,
		},
		{
			Name:      "stats",
			Usage:     "build a scene and print its acceleration structure statistics",
			ArgsUsage: "scene",
			Flags:     []cli.Flag{scenesDir},
			Action:    statsCommand,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes and scene files",
			Flags:  []cli.Flag{scenesDir},
			Action: scenesCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
