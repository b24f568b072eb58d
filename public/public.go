// Package public embeds the static assets served under /assets/.
package public

import (
	"embed"
	"io/fs"
)

//go:embed assets
var static embed.FS

// AssetsFS returns the embedded assets rooted at the assets directory.
func AssetsFS() (fs.FS, error) {
	return fs.Sub(static, "assets")
}
