package widget

import (
	"embed"
	"io/fs"
)

var (
	//go:embed templates/*
	embeddedTemplates embed.FS

	//go:embed static
	embeddedStatic embed.FS
)

// Static returns the stylesheet, script and default icon of the widget.
func Static() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}

	return sub
}
