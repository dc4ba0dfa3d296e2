package store

import "fmt"

var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// humanSize formats a byte count with binary prefixes and one decimal
// place, e.g. "0.0B", "1.5KiB".
func humanSize(bytes int64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f%s", size, sizeUnits[unit])
}
