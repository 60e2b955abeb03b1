//go:build !unix

package bench

func maxRSSBytes() int64 {
	return 0
}
