package ilds

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed *.ild *.ild.gz
var contents embed.FS

// List returns the names of all fixture files
func List() []string {
	result := make([]string, 0)
	_ = fs.WalkDir(contents, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) != ".go" {
			result = append(result, p)
		}
		return nil
	})
	return result
}

func Open(name string) (fs.File, error) {
	return contents.Open(name)
}

func ReadFile(name string) ([]byte, error) {
	return contents.ReadFile(name)
}
