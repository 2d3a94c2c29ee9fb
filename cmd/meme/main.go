// The meme command renders memes from the command line, runs batch
// manifests and serves the renderer over HTTP.
//
// Usage:
//
//	meme render -in photo.jpg -out meme.png -top "TOP TEXT" -bottom "BOTTOM TEXT"
//	meme batch -manifest memes.json
//	meme serve -listen :3003
//	meme fonts
//
// Configuration is read from MEME_* environment variables and an
// optional .env file. Flags take precedence.
package main

import "io"
import "os"
import "fmt"
import "flag"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt/internal/config"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command struct {
	name string
	summary string
	run func(env *environment, args []string) error
}

var commands = []command {
	{"render", "render a single meme", runRender},
	{"batch", "render the memes in a JSON manifest", runBatch},
	{"serve", "serve the meme renderer over HTTP", runServe},
	{"fonts", "list the available fonts", runFonts},
}

// Shared state for subcommands.
type environment struct {
	cfg config.Config
	logger *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		printUsage(stderr)
		if len(args) == 0 { return 2 }
		return 0
	}

	var selected *command
	for i := range commands {
		if commands[i].name == args[0] { selected = &commands[i] }
	}
	if selected == nil {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		printUsage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %s\n", err)
		return 1
	}
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.LogLevel)

	env := &environment{ cfg: cfg, logger: logger, stdout: stdout, stderr: stderr }
	err = selected.run(env, args[1:])
	if err == flag.ErrHelp { return 0 }
	if err != nil {
		logger.WithError(err).Error(selected.name + " failed")
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: meme <command> [flags]")
	fmt.Fprintln(w, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.name, cmd.summary)
	}
}

// Registers the flags shared by all subcommands. The returned function
// must be called after parsing to apply them to the environment.
func (self *environment) commonFlags(flags *flag.FlagSet) func() error {
	logLevel := flags.String("loglevel", self.cfg.LogLevel.String(), "logging level: debug, info, warn, error")
	fontDir := flags.String("fontdir", self.cfg.FontDir, "directory with extra .ttf and .otf fonts")
	strict := flags.Bool("strict", self.cfg.StrictFonts, "fail on unknown fonts instead of using the fallback")
	cacheBytes := flags.Int("cache", self.cfg.CacheBytes, "glyph cache size in bytes, 0 to disable")
	return func() error {
		level, err := logrus.ParseLevel(*logLevel)
		if err != nil { return err }
		self.logger.SetLevel(level)
		self.cfg.LogLevel = level
		self.cfg.FontDir = *fontDir
		self.cfg.StrictFonts = *strict
		self.cfg.CacheBytes = *cacheBytes
		return nil
	}
}

func (self *environment) newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet("meme " + name, flag.ContinueOnError)
	flags.SetOutput(self.stderr)
	return flags
}
