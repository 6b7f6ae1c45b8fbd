//go:build !darwin && !windows

package clip

import "hash/fnv"

// changeCount digests the current clipboard content. There is no portable
// change counter off macOS and Windows, so change detection degrades to a
// content diff: the token differs whenever the content does, which is all the
// safe-copy protocol compares.
func (d *Device) changeCount() (uint64, error) {
	text, err := d.Text()
	if err != nil {
		return 0, err
	}
	image, err := d.Image()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write(text)
	h.Write([]byte{0})
	h.Write(image)
	return h.Sum64(), nil
}
