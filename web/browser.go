package web

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
)

// OpenInBrowser writes the page to a temporary .html file and opens it with
// the system's default browser handler. The file is left on disk for the
// browser to read.
func OpenInBrowser(page string) error {
	temp, err := os.CreateTemp("", "f1view-*.html")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	if _, err := temp.WriteString(page); err != nil {
		temp.Close()
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err := browser.OpenFile(temp.Name()); err != nil {
		return fmt.Errorf("error opening browser: %w", err)
	}
	return nil
}
