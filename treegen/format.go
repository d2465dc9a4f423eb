// SPDX-License-Identifier: MIT

package treegen

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Format renders a parent list as the space-separated protocol line.
func Format(parents []int) string {
	var b strings.Builder
	for i, p := range parents {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(p))
	}

	return b.String()
}

// WriteDocument writes a complete protocol document: the experiment count,
// then for every parent list its city count and parent line.
func WriteDocument(w io.Writer, experiments ...[]int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(experiments)))
	bw.WriteByte('\n')
	for _, parents := range experiments {
		bw.WriteString(strconv.Itoa(len(parents) + 1))
		bw.WriteByte('\n')
		bw.WriteString(Format(parents))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
