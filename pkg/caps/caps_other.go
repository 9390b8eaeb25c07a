//go:build !linux

package caps

const (
	CombinedCreateTemp = false
	FastDup            = false
	FastCopy           = false
	SecureZero         = true
)
