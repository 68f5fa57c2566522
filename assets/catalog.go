package assets

import (
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Catalog is the immutable sprite registry built once at startup. It scans
// an optional asset directory, groups numbered files into animation frames
// and classifies the results into variant pools; everything else falls
// back to procedural art. The simulation only ever sees sprite names and
// the pool/capability queries below, never the filesystem.
type Catalog struct {
	sprites map[string]*Sprite
	loaded  map[string]bool // names backed by real files, not placeholders

	groundPool  []string // strict "ground_*" variants
	flyingPool  []string // strict "fly_*" variants
	folderPool  []string // legacy "obstacle*" variants
	userDragons []string // "dragon*" variants

	hasBoulder bool
}

var frameSuffix = regexp.MustCompile(`^(.+)_(\d+)$`)

// Load builds the catalog from dir. A missing or empty directory is fine;
// individual unreadable files are skipped with a warning.
func Load(dir string) *Catalog {
	c := &Catalog{sprites: map[string]*Sprite{}, loaded: map[string]bool{}}

	type frame struct {
		idx int
		img image.Image
	}
	groups := map[string][]frame{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read asset dir %s: %v", dir, err)
		}
		entries = nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".png") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			log.Printf("Warning: failed to open %s: %v", path, err)
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			log.Printf("Warning: failed to decode %s: %v", path, err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		name = strings.ToLower(name)
		idx := 0
		if m := frameSuffix.FindStringSubmatch(name); m != nil {
			name = m[1]
			idx, _ = strconv.Atoi(m[2])
		}
		groups[name] = append(groups[name], frame{idx: idx, img: img})
	}

	for name, frames := range groups {
		sort.Slice(frames, func(i, j int) bool { return frames[i].idx < frames[j].idx })
		imgs := make([]image.Image, len(frames))
		for i, fr := range frames {
			imgs[i] = fr.img
		}
		cn := canonicalName(name)
		c.sprites[cn] = NewSprite(cn, imgs...)
		c.loaded[cn] = true
	}

	for name := range c.sprites {
		switch {
		case strings.HasPrefix(name, "ground_"):
			c.groundPool = append(c.groundPool, name)
		case strings.HasPrefix(name, "fly_"):
			c.flyingPool = append(c.flyingPool, name)
		case strings.HasPrefix(name, "obstacle"):
			c.folderPool = append(c.folderPool, name)
		case strings.HasPrefix(name, "dragon"):
			c.userDragons = append(c.userDragons, name)
		case name == "boulder":
			c.hasBoulder = true
		}
	}
	sort.Strings(c.groundPool)
	sort.Strings(c.flyingPool)
	sort.Strings(c.folderPool)
	sort.Strings(c.userDragons)

	return c
}

// canonicalName folds the accepted file aliases onto the names the
// simulation uses.
func canonicalName(name string) string {
	switch name {
	case "stone":
		return "rock"
	case "drum":
		return "barrel"
	}
	return name
}

// Sprite returns the named sprite, generating a procedural placeholder on
// first miss. Never returns nil.
func (c *Catalog) Sprite(name string) *Sprite {
	if s, ok := c.sprites[name]; ok {
		return s
	}
	s := proceduralSprite(name)
	c.sprites[name] = s
	return s
}

// Has reports whether a real (non-procedural) asset was loaded for name.
func (c *Catalog) Has(name string) bool {
	return c.loaded[name]
}

// StrictMode is on when the user supplied any ground, flying or dragon
// asset; the spawn director then only uses the strict pools.
func (c *Catalog) StrictMode() bool {
	return len(c.groundPool) > 0 || len(c.flyingPool) > 0 || len(c.userDragons) > 0
}

func (c *Catalog) StrictGround() []string { return c.groundPool }

// StrictFlying is the flying pool for strict spawns. User dragons stand
// in when no fly variants were supplied.
func (c *Catalog) StrictFlying() []string {
	if len(c.flyingPool) > 0 {
		return c.flyingPool
	}
	return c.userDragons
}

func (c *Catalog) FolderObstacles() []string { return c.folderPool }

func (c *Catalog) UserDragons() []string { return c.userDragons }
func (c *Catalog) HasUserDragons() bool  { return len(c.userDragons) > 0 }

func (c *Catalog) HasBoulder() bool { return c.hasBoulder }
