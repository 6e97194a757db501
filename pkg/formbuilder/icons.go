package formbuilder

import (
	"fmt"
	"path"
	"strings"
)

// iconURL resolves an icon name through the theme's asset resolver, then
// the configured icon path pattern.
func (b *Builder) iconURL(icon string) string {
	if b.theme != nil && b.theme.AssetURL != nil {
		if url := strings.TrimSpace(b.theme.AssetURL("icons/" + icon + ".png")); url != "" {
			return url
		}
	}
	return iconPath(b.defaults.IconPath, icon)
}

func iconPath(pattern, icon string) string {
	if strings.Contains(pattern, "%s") {
		return fmt.Sprintf(pattern, icon)
	}
	if pattern == "" {
		pattern = "/images/icons"
	}
	return path.Join(pattern, icon+".png")
}
