// Package output renders the result of a scan.
package output

import (
	"bufio"
	"io"
)

// PrintCookies writes one cookie per line. Nothing is written for an empty
// result.
func PrintCookies(w io.Writer, cookies []string) error {
	if len(cookies) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, c := range cookies {
		bw.WriteString(c)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
