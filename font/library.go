package font

import "io/fs"
import "sort"
import "sync"
import "errors"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/text/cases"

// A collection of fonts accessible by name.
//
// Fonts are stored under their full name (see [GetName]()), but
// [Library.Lookup]() also resolves PostScript names and family names,
// case-insensitively, which is what meme styles usually carry.
//
// A library doesn't know about system fonts; directories have to be
// added explicitly with [Library.ParseAllFromPath](). Libraries are
// safe for concurrent use.
type Library struct {
	mutex sync.RWMutex
	fonts map[string]*sfnt.Font
	postscript map[string]string // folded PostScript name -> full name
	families map[string]string // folded family name -> full name
	fullFolded map[string]string // folded full name -> full name
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*sfnt.Font),
		postscript: make(map[string]string),
		families: make(map[string]string),
		fullFolded: make(map[string]string),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Finds out whether a font with the given full name exists in the library.
func (self *Library) HasFont(name string) bool {
	self.mutex.RLock()
	_, found := self.fonts[name]
	self.mutex.RUnlock()
	return found
}

// Returns the font with the given full name, or nil if not found.
// See [Library.Lookup]() for a more lenient search.
func (self *Library) GetFont(name string) *sfnt.Font {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.fonts[name]
}

// Finds a font by name. The name is matched, in order, against full
// names, PostScript names and family names, ignoring case. When several
// fonts share a family, the family resolves to the "Regular" subfamily
// if present, or to the first font added otherwise.
//
// Returns the font, its full name and whether it was found at all.
func (self *Library) Lookup(name string) (*sfnt.Font, string, bool) {
	if name == "" { return nil, "", false }

	self.mutex.RLock()
	defer self.mutex.RUnlock()
	if font, found := self.fonts[name]; found {
		return font, name, true
	}

	folded := foldName(name)
	for _, index := range []map[string]string{ self.fullFolded, self.postscript, self.families } {
		fullName, found := index[folded]
		if found { return self.fonts[fullName], fullName, true }
	}
	return nil, "", false
}

// Returns the full names of all the fonts in the library, sorted.
func (self *Library) Names() []string {
	self.mutex.RLock()
	names := make([]string, 0, len(self.fonts))
	for name, _ := range self.fonts {
		names = append(names, name)
	}
	self.mutex.RUnlock()
	sort.Strings(names)
	return names
}

// Adds the given font into the library and returns its name and any
// possible error. If the given font is nil, the method will panic. If
// another font with the same name was already present in the library,
// [ErrAlreadyPresent] will be returned.
//
// This method is rarely necessary unless the font parsing is done
// by an external package. In general, using the built-in parsing
// functions (e.g. [Library.ParseFromBytes]()) would be preferable.
func (self *Library) AddFont(font *sfnt.Font) (string, error) {
	name, err := GetName(font)
	if err != nil { return "", err }
	return name, self.addNewFont(font, name)
}

// Returns false if the font can't be removed due to not being found.
// The given name must be the full font name.
func (self *Library) RemoveFont(name string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	self.rebuildIndexes()
	return true
}

// Returns the name of the added font and any possible error.
// If error == nil, the font name will be non-empty.
//
// If a font with the same name has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// An error that can be returned by [Library.AddFont](), [Library.ParseFromPath]()
// and [Library.ParseFromBytes]() when a font is not added due to its name already
// being present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

func (self *Library) addNewFont(font *sfnt.Font, name string) error {
	if name == "" { return ErrNotFound }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[name]; found { return ErrAlreadyPresent }
	self.fonts[name] = font
	self.indexFont(font, name)
	return nil
}

// must be called with the write lock held
func (self *Library) indexFont(font *sfnt.Font, name string) {
	self.fullFolded[foldName(name)] = name
	psName, err := GetPostScriptName(font)
	if err == nil && psName != "" {
		self.postscript[foldName(psName)] = name
	}

	family, err := GetFamily(font)
	if err != nil || family == "" { return }
	key := foldName(family)
	_, taken := self.families[key]
	if !taken {
		self.families[key] = name
		return
	}
	subfamily, err := GetSubfamily(font)
	if err == nil && foldName(subfamily) == "regular" {
		self.families[key] = name
	}
}

// must be called with the write lock held
func (self *Library) rebuildIndexes() {
	self.postscript = make(map[string]string, len(self.fonts))
	self.families = make(map[string]string, len(self.fonts))
	self.fullFolded = make(map[string]string, len(self.fonts))

	// sorted so family resolution stays deterministic
	names := make([]string, 0, len(self.fonts))
	for name, _ := range self.fonts { names = append(names, name) }
	sort.Strings(names)
	for _, name := range names {
		self.indexFont(self.fonts[name], name)
	}
}

// Special error that can be used with [Library.EachFont]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, passing their
// names and content as arguments, sorted by name.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
// Otherwise, [Library.EachFont]() will always return nil.
func (self *Library) EachFont(fontFunc func(string, *sfnt.Font) error) error {
	for _, name := range self.Names() {
		font := self.GetFont(name)
		if font == nil { continue } // removed concurrently
		err := fontFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and .otf
// fonts in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same name already exists in the Library) and any error
// that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			valid := hasValidFontExtension(path)
			if !valid { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		valid := hasValidFontExtension(entry.Name())
		if !valid { continue }
		path := dirName + entry.Name()
		_, err = self.ParseFromFS(filesys, path)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

// Casers keep state, so a new one is created for each call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
