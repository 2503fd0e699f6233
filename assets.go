package siteconf

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Asset is one file the generator copies verbatim into its output.
type Asset struct {
	Source  string // slash path relative to the content root
	Output  string // slash path relative to the output root
	Size    int64
	Format  string // image format, empty when the file is not a decodable image
	Width   int
	Height  int
	Missing bool
}

// Inventory lists the files named by c.StaticPaths under root, in
// static_paths order, directories expanded in lexical order. Entries that do
// not exist are reported with Missing set; checking them is the generator's job.
func Inventory(root string, c SiteConfig) ([]Asset, error) {
	var assets []Asset
	for _, sp := range c.StaticPaths {
		full := filepath.Join(root, filepath.FromSlash(sp))
		info, err := os.Stat(full)
		if errors.Is(err, fs.ErrNotExist) {
			assets = append(assets, Asset{Source: sp, Output: c.OutputPath(sp), Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("siteconf: stat %s: %w", sp, err)
		}
		if !info.IsDir() {
			assets = append(assets, describeAsset(c, full, sp, info.Size()))
			continue
		}
		err = filepath.WalkDir(full, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(full, p)
			if err != nil {
				return err
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			src := path.Join(sp, filepath.ToSlash(rel))
			assets = append(assets, describeAsset(c, p, src, fi.Size()))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("siteconf: walk %s: %w", sp, err)
		}
	}
	return assets, nil
}

func describeAsset(c SiteConfig, full, src string, size int64) Asset {
	a := Asset{Source: src, Output: c.OutputPath(src), Size: size}
	f, err := os.Open(full)
	if err != nil {
		return a
	}
	defer f.Close()
	if cfg, format, err := image.DecodeConfig(f); err == nil {
		a.Format = format
		a.Width = cfg.Width
		a.Height = cfg.Height
	}
	return a
}
