// Package batch renders memes described in a JSON manifest, using a
// bounded number of concurrent workers.
//
// A manifest looks like this:
//
//	{
//	  "output_dir": "out",
//	  "format": "png",
//	  "jobs": [
//	    { "input": "cat.jpg", "output": "cat-meme.png", "top": "I CAN HAS", "bottom": "MEMES" },
//	    { "input": "dog.png", "top": "SUCH RENDER", "style": { "fill": "#ff0" } }
//	  ]
//	}
//
// Relative paths are resolved against the manifest directory. Jobs
// without an output name get a ULID name in the output directory.
package batch

import "os"
import "errors"
import "strconv"
import "path/filepath"
import "encoding/json"

import "github.com/tinne26/memetxt/codec"
import "github.com/tinne26/memetxt/internal/params"

// A single meme to render.
type Job struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	params.Meme
}

// A list of jobs and their shared output options.
type Manifest struct {
	OutputDir string `json:"output_dir,omitempty"`
	Format    string `json:"format,omitempty"` // for jobs without output name
	Quality   int    `json:"quality,omitempty"` // JPEG quality
	Jobs      []Job  `json:"jobs"`

	baseDir string
}

// Returned by [LoadManifest]() for manifests without jobs.
var ErrNoJobs = errors.New("batch: manifest has no jobs")

// Loads and checks the manifest at the given path.
func LoadManifest(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()

	var manifest Manifest
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&manifest)
	if err != nil { return nil, errors.New("batch: invalid manifest '" + path + "': " + err.Error()) }

	manifest.baseDir = filepath.Dir(path)
	return &manifest, manifest.check()
}

func (self *Manifest) check() error {
	if len(self.Jobs) == 0 { return ErrNoJobs }
	if _, err := codec.ParseFormat(self.Format); err != nil { return err }
	for i, job := range self.Jobs {
		if job.Input == "" {
			return errors.New("batch: job #" + strconv.Itoa(i) + " has no input")
		}
		if job.Output != "" {
			_, err := codec.FormatFromPath(job.Output)
			if err != nil { return errors.New("batch: job #" + strconv.Itoa(i) + ": " + err.Error()) }
		}
	}
	return nil
}

func (self *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || self.baseDir == "" { return path }
	return filepath.Join(self.baseDir, path)
}

func (self *Manifest) outputDir() string {
	if self.OutputDir == "" { return self.resolve(".") }
	return self.resolve(self.OutputDir)
}
