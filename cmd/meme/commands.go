package main

import "os"
import "fmt"
import "errors"
import "context"
import "os/signal"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt"
import "github.com/tinne26/memetxt/codec"
import "github.com/tinne26/memetxt/internal/batch"
import "github.com/tinne26/memetxt/internal/params"
import "github.com/tinne26/memetxt/internal/server"

func runRender(env *environment, args []string) error {
	flags := env.newFlagSet("render")
	apply := env.commonFlags(flags)
	in := flags.String("in", "", "base image path (required)")
	out := flags.String("out", "meme.png", "output path, the extension selects the format")
	quality := flags.Int("quality", codec.DefaultJPEGQuality, "JPEG quality")

	var meme params.Meme
	var style params.Style
	var strokeWidth float64
	var navBar, toolBar int
	flags.StringVar(&meme.Top, "top", "", "top caption")
	flags.StringVar(&meme.Bottom, "bottom", "", "bottom caption")
	flags.StringVar(&style.Font, "font", memetxt.DefaultFontName, "font name")
	flags.Float64Var(&style.Size, "size", memetxt.DefaultFontSize, "font size in canvas units")
	flags.StringVar(&style.Fill, "fill", "#ffffff", "fill color")
	flags.StringVar(&style.Stroke, "stroke", "#000000", "stroke color")
	flags.Float64Var(&strokeWidth, "stroke-width", memetxt.DefaultStrokeWidth, "stroke width as a percentage of the font size (negative: fill and stroke, positive: hollow)")
	flags.StringVar(&style.Align, "align", "center", "caption alignment: left, center, right")
	flags.Float64Var(&style.Tracking, "tracking", 0, "extra space between glyphs")
	flags.BoolVar(&style.Uppercase, "uppercase", false, "convert captions to upper case")
	flags.IntVar(&meme.Canvas.Width, "width", 0, "canvas width, 0 for the image width")
	flags.IntVar(&meme.Canvas.Height, "height", 0, "canvas height, 0 for the image height plus chrome")
	flags.IntVar(&navBar, "nav", memetxt.DefaultNavBarHeight, "navigation bar height")
	flags.IntVar(&toolBar, "toolbar", memetxt.DefaultToolBarHeight, "tool bar height")
	flags.StringVar(&meme.Canvas.Mode, "mode", "fill", "content mode: fill, fit, aspect-fill")
	flags.StringVar(&meme.Canvas.Background, "background", "", "background color")
	flags.Float64Var(&meme.Canvas.Scale, "scale", 1, "output pixels per canvas unit")
	flags.BoolVar(&meme.Canvas.Placeholders, "placeholders", false, "use TOP and BOTTOM for empty captions")
	err := flags.Parse(args)
	if err != nil { return err }
	err = apply()
	if err != nil { return err }
	if *in == "" { return errors.New("missing -in image path") }

	style.StrokeWidth = &strokeWidth
	meme.Style = &style
	meme.Canvas.NavBar = &navBar
	meme.Canvas.ToolBar = &toolBar

	renderer, err := env.cfg.NewRenderer(env.logger)
	if err != nil { return err }
	img, err := codec.DecodeFile(*in)
	if err != nil { return err }
	request, err := meme.Request(img)
	if err != nil { return err }
	result, err := renderer.Render(request)
	if err != nil { return err }
	for _, warning := range result.Warnings {
		env.logger.Warn(warning.Error())
	}

	format, err := codec.FormatFromPath(*out)
	if err != nil { return err }
	file, err := os.Create(*out)
	if err != nil { return err }
	err = codec.Encode(file, result.Image, format, *quality)
	if err != nil {
		_ = file.Close()
		return err
	}
	err = file.Close()
	if err != nil { return err }
	env.logger.WithFields(logrus.Fields{
		"out": *out, "size": result.Image.Rect.Size().String(),
	}).Info("meme rendered")
	return nil
}

func runBatch(env *environment, args []string) error {
	flags := env.newFlagSet("batch")
	apply := env.commonFlags(flags)
	manifestPath := flags.String("manifest", "memes.json", "JSON manifest path")
	workers := flags.Int("workers", env.cfg.Workers, "max concurrent renders")
	err := flags.Parse(args)
	if err != nil { return err }
	err = apply()
	if err != nil { return err }

	manifest, err := batch.LoadManifest(*manifestPath)
	if err != nil { return err }
	renderer, err := env.cfg.NewRenderer(env.logger)
	if err != nil { return err }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runner := &batch.Runner{ Renderer: renderer, Workers: *workers, Logger: env.logger }
	outcomes, err := runner.Run(ctx, manifest)
	if err != nil { return err }
	for _, outcome := range outcomes {
		fmt.Fprintln(env.stdout, outcome.Output)
	}
	return nil
}

func runServe(env *environment, args []string) error {
	flags := env.newFlagSet("serve")
	apply := env.commonFlags(flags)
	listen := flags.String("listen", env.cfg.ListenAddr, "listen address")
	err := flags.Parse(args)
	if err != nil { return err }
	err = apply()
	if err != nil { return err }

	renderer, err := env.cfg.NewRenderer(env.logger)
	if err != nil { return err }
	return server.New(renderer, env.cfg, env.logger).ListenAndServe(*listen)
}

func runFonts(env *environment, args []string) error {
	flags := env.newFlagSet("fonts")
	apply := env.commonFlags(flags)
	err := flags.Parse(args)
	if err != nil { return err }
	err = apply()
	if err != nil { return err }

	renderer, err := env.cfg.NewRenderer(env.logger)
	if err != nil { return err }
	for _, name := range renderer.Library().Names() {
		fmt.Fprintln(env.stdout, name)
	}
	return nil
}
