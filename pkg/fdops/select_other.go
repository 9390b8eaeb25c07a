//go:build !linux

package fdops

var defaultDupper dupper = portableDup{}
