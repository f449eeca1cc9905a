// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images rewrites remote image references in Markdown content.
// Documents exported from web tools often carry ![alt](https://...) image
// links whose files were saved next to the Markdown. When a sibling file
// matches the reference, the link is pointed at it so the converter embeds
// the image; otherwise the image is demoted to a plain hyperlink. The
// rewrite is textual and never touches the network.
package images

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// remoteImagePattern matches Markdown image syntax with an http(s) target.
var remoteImagePattern = regexp.MustCompile(`!\[(.*?)\]\((https?://.*?)\)`)

// viewOnlineFormat is the replacement for a remote image with no local
// counterpart: a regular link the reader can follow from the document.
const viewOnlineFormat = "[CLICK TO VIEW ONLINE IMAGE: (%s)](%s)"

// RewriteRemote replaces remote image references in content with references
// to files in sourceDir when a file with the same name exists there, matched
// case-insensitively. References with no local counterpart become plain
// hyperlinks. Non-image links are left untouched.
func RewriteRemote(content, sourceDir string) (string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return "", fmt.Errorf("reading source directory %s: %w", sourceDir, err)
	}

	// Lowercased filename -> actual filename in sourceDir.
	local := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		local[strings.ToLower(entry.Name())] = entry.Name()
	}

	rewritten := remoteImagePattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := remoteImagePattern.FindStringSubmatch(match)
		alt, url := groups[1], groups[2]

		name := path.Base(strings.TrimRight(url, "/"))
		if actual, ok := local[strings.ToLower(name)]; ok {
			return fmt.Sprintf("![%s](%s)", alt, filepath.Join(sourceDir, actual))
		}
		return fmt.Sprintf(viewOnlineFormat, alt, url)
	})

	return rewritten, nil
}
