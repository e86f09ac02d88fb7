package bubble_adapter

import "github.com/atotto/clipboard"

// SystemClipboard is the core.Clipboard backed by the operating system.
type SystemClipboard struct{}

func (c *SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}
