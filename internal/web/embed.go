package web

import (
	"embed"
	"io/fs"
)

var (
	//go:embed static
	embeddedStatic embed.FS

	//go:embed templates
	embeddedTemplates embed.FS
)

// siteFS returns dir of fsys as its own root. dir is always one of the
// embedded directories above, so an error can only be a programming mistake.
func siteFS(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}
