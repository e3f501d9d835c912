// humanreadable formats byte counts for log lines.
package humanreadable

import "fmt"

// SI returns b in decimal units (kB, MB, GB, ...) with one decimal.
// Below 1000 the plain number of bytes is returned.
func SI(b int64) string {
	return format(b, 1000, "kMGTPE", "B")
}

// IEC returns b in binary units (KiB, MiB, GiB, ...) with one
// decimal. Below 1024 the plain number of bytes is returned.
func IEC(b int64) string {
	return format(b, 1024, "KMGTPE", "iB")
}

func format(b, unit int64, prefixes, suffix string) string {
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := unit, 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %c%s", float64(b)/float64(div), prefixes[exp], suffix)
}
